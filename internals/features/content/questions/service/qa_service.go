// Aturan diskusi tanya-jawab:
//   - pertanyaan beku (tidak bisa diedit/dihapus penulisnya) begitu
//     jawaban pertama masuk, status jawaban apa pun;
//   - jawaban admin langsung approved + approved_at, jawaban kontributor
//     antre pending, user biasa tidak boleh menjawab.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fikrislam_backend/internals/constants"
	"fikrislam_backend/internals/features/content/questions/model"
)

var (
	ErrQuestionNotFound = errors.New("pertanyaan tidak ditemukan")
	ErrAnswerNotFound   = errors.New("jawaban tidak ditemukan")
	ErrNotAuthor        = errors.New("bukan penulis pertanyaan")
	ErrQuestionFrozen   = errors.New("pertanyaan sudah punya jawaban")
	ErrAnswerNotAllowed = errors.New("role ini tidak boleh menjawab")
)

type QARepo interface {
	FindQuestionByID(id uuid.UUID) (*model.QuestionModel, error)
	CreateQuestion(q *model.QuestionModel) error
	UpdateQuestionText(id uuid.UUID, text string) error
	DeleteQuestion(id uuid.UUID) error
	// CountAnswers menghitung SEMUA jawaban, termasuk pending/rejected:
	// pembekuan pertanyaan tidak bergantung hasil moderasi.
	CountAnswers(questionID uuid.UUID) (int64, error)

	FindAnswerByID(id uuid.UUID) (*model.AnswerModel, error)
	CreateAnswer(a *model.AnswerModel) error
	UpdateAnswerFields(id uuid.UUID, fields map[string]interface{}) error
}

type QAService struct {
	Repo QARepo
	now  func() time.Time
}

func NewQAService(repo QARepo) *QAService {
	return &QAService{Repo: repo, now: time.Now}
}

/* ==========================
   Questions
========================== */

func (s *QAService) Ask(userID uuid.UUID, category, text string) (*model.QuestionModel, error) {
	q := &model.QuestionModel{
		QuestionCategory: category,
		QuestionText:     text,
		QuestionUserID:   userID,
	}
	if err := s.Repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QAService) EditQuestion(id, userID uuid.UUID, text string) (*model.QuestionModel, error) {
	if err := s.guardQuestionMutable(id, userID); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateQuestionText(id, text); err != nil {
		return nil, err
	}
	return s.Repo.FindQuestionByID(id)
}

func (s *QAService) DeleteQuestion(id, userID uuid.UUID) error {
	if err := s.guardQuestionMutable(id, userID); err != nil {
		return err
	}
	return s.Repo.DeleteQuestion(id)
}

func (s *QAService) guardQuestionMutable(id, userID uuid.UUID) error {
	q, err := s.Repo.FindQuestionByID(id)
	if err != nil {
		return ErrQuestionNotFound
	}
	if q.QuestionUserID != userID {
		return ErrNotAuthor
	}
	n, err := s.Repo.CountAnswers(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrQuestionFrozen
	}
	return nil
}

/* ==========================
   Answers
========================== */

// SubmitAnswer: status awal bergantung role penjawab.
func (s *QAService) SubmitAnswer(questionID, userID uuid.UUID, role, text string) (*model.AnswerModel, error) {
	if _, err := s.Repo.FindQuestionByID(questionID); err != nil {
		return nil, ErrQuestionNotFound
	}

	a := &model.AnswerModel{
		AnswerQuestionID: questionID,
		AnswerText:       text,
		AnswerUserID:     userID,
	}
	switch role {
	case constants.RoleAdmin:
		now := s.now()
		a.AnswerStatus = model.AnswerStatusApproved
		a.AnswerApprovedAt = &now
	case constants.RoleContributor:
		a.AnswerStatus = model.AnswerStatusPending
	default:
		return nil, ErrAnswerNotAllowed
	}

	if err := s.Repo.CreateAnswer(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *QAService) ApproveAnswer(id uuid.UUID) (*model.AnswerModel, error) {
	cur, err := s.Repo.FindAnswerByID(id)
	if err != nil {
		return nil, ErrAnswerNotFound
	}

	fields := map[string]interface{}{
		"answer_status": model.AnswerStatusApproved,
	}
	if cur.AnswerApprovedAt == nil {
		fields["answer_approved_at"] = s.now()
	}
	if err := s.Repo.UpdateAnswerFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindAnswerByID(id)
}

// RejectAnswer: jawaban ditolak tetap tersimpan, hanya tidak pernah
// muncul di listing publik.
func (s *QAService) RejectAnswer(id uuid.UUID) (*model.AnswerModel, error) {
	if _, err := s.Repo.FindAnswerByID(id); err != nil {
		return nil, ErrAnswerNotFound
	}

	if err := s.Repo.UpdateAnswerFields(id, map[string]interface{}{
		"answer_status": model.AnswerStatusRejected,
	}); err != nil {
		return nil, err
	}
	return s.Repo.FindAnswerByID(id)
}
