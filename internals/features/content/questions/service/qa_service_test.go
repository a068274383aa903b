package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fikrislam_backend/internals/features/content/questions/model"
)

type mockQARepo struct {
	mock.Mock
}

func (m *mockQARepo) FindQuestionByID(id uuid.UUID) (*model.QuestionModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestionModel), args.Error(1)
}

func (m *mockQARepo) CreateQuestion(q *model.QuestionModel) error {
	return m.Called(q).Error(0)
}

func (m *mockQARepo) UpdateQuestionText(id uuid.UUID, text string) error {
	return m.Called(id, text).Error(0)
}

func (m *mockQARepo) DeleteQuestion(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *mockQARepo) CountAnswers(questionID uuid.UUID) (int64, error) {
	args := m.Called(questionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockQARepo) FindAnswerByID(id uuid.UUID) (*model.AnswerModel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnswerModel), args.Error(1)
}

func (m *mockQARepo) CreateAnswer(a *model.AnswerModel) error {
	return m.Called(a).Error(0)
}

func (m *mockQARepo) UpdateAnswerFields(id uuid.UUID, fields map[string]interface{}) error {
	return m.Called(id, fields).Error(0)
}

func newQAService(repo *mockQARepo, at time.Time) *QAService {
	svc := NewQAService(repo)
	svc.now = func() time.Time { return at }
	return svc
}

func sampleQuestion(author uuid.UUID) *model.QuestionModel {
	return &model.QuestionModel{
		QuestionID:       uuid.New(),
		QuestionCategory: "book",
		QuestionText:     "Apa perbedaan qiraah sab'ah dengan qiraah asyrah?",
		QuestionUserID:   author,
	}
}

func TestEditQuestionAllowedWhileUnanswered(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	author := uuid.New()
	q := sampleQuestion(author)
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)
	repo.On("CountAnswers", q.QuestionID).Return(int64(0), nil)
	repo.On("UpdateQuestionText", q.QuestionID, "Teks baru yang lebih jelas").Return(nil)

	_, err := svc.EditQuestion(q.QuestionID, author, "Teks baru yang lebih jelas")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestQuestionFrozenAfterFirstAnswer(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	author := uuid.New()
	q := sampleQuestion(author)
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)
	// satu jawaban pending pun sudah membekukan pertanyaan
	repo.On("CountAnswers", q.QuestionID).Return(int64(1), nil)

	_, err := svc.EditQuestion(q.QuestionID, author, "Teks baru")
	assert.ErrorIs(t, err, ErrQuestionFrozen)

	err = svc.DeleteQuestion(q.QuestionID, author)
	assert.ErrorIs(t, err, ErrQuestionFrozen)

	repo.AssertNotCalled(t, "UpdateQuestionText", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteQuestion", mock.Anything)
}

func TestEditQuestionRejectsNonAuthor(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	q := sampleQuestion(uuid.New())
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)

	_, err := svc.EditQuestion(q.QuestionID, uuid.New(), "Teks baru")

	assert.ErrorIs(t, err, ErrNotAuthor)
	repo.AssertNotCalled(t, "CountAnswers", mock.Anything)
}

func TestAdminAnswerIsAutoApproved(t *testing.T) {
	repo := new(mockQARepo)
	answeredAt := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	svc := newQAService(repo, answeredAt)

	q := sampleQuestion(uuid.New())
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)
	repo.On("CreateAnswer", mock.MatchedBy(func(a *model.AnswerModel) bool {
		return a.AnswerStatus == model.AnswerStatusApproved &&
			a.AnswerApprovedAt != nil && a.AnswerApprovedAt.Equal(answeredAt)
	})).Return(nil)

	a, err := svc.SubmitAnswer(q.QuestionID, uuid.New(), "admin", "Qiraah sab'ah adalah ...")

	assert.NoError(t, err)
	assert.Equal(t, model.AnswerStatusApproved, a.AnswerStatus)
	repo.AssertExpectations(t)
}

func TestContributorAnswerStartsPending(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	q := sampleQuestion(uuid.New())
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)
	repo.On("CreateAnswer", mock.MatchedBy(func(a *model.AnswerModel) bool {
		return a.AnswerStatus == model.AnswerStatusPending && a.AnswerApprovedAt == nil
	})).Return(nil)

	a, err := svc.SubmitAnswer(q.QuestionID, uuid.New(), "contributor", "Menurut riwayat ...")

	assert.NoError(t, err)
	assert.Equal(t, model.AnswerStatusPending, a.AnswerStatus)
	repo.AssertExpectations(t)
}

func TestOrdinaryUserCannotAnswer(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	q := sampleQuestion(uuid.New())
	repo.On("FindQuestionByID", q.QuestionID).Return(q, nil)

	_, err := svc.SubmitAnswer(q.QuestionID, uuid.New(), "user", "Jawaban liar")

	assert.ErrorIs(t, err, ErrAnswerNotAllowed)
	repo.AssertNotCalled(t, "CreateAnswer", mock.Anything)
}

func TestApproveAnswerSetsApprovedAtOnce(t *testing.T) {
	repo := new(mockQARepo)
	at := time.Date(2025, 7, 12, 9, 30, 0, 0, time.UTC)
	svc := newQAService(repo, at)

	pending := &model.AnswerModel{
		AnswerID:         uuid.New(),
		AnswerQuestionID: uuid.New(),
		AnswerStatus:     model.AnswerStatusPending,
	}
	repo.On("FindAnswerByID", pending.AnswerID).Return(pending, nil)
	repo.On("UpdateAnswerFields", pending.AnswerID, mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["answer_status"] == model.AnswerStatusApproved &&
			fields["answer_approved_at"] == at
	})).Return(nil)

	_, err := svc.ApproveAnswer(pending.AnswerID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRejectAnswerKeepsRow(t *testing.T) {
	repo := new(mockQARepo)
	svc := newQAService(repo, time.Now())

	a := &model.AnswerModel{AnswerID: uuid.New(), AnswerStatus: model.AnswerStatusPending}
	repo.On("FindAnswerByID", a.AnswerID).Return(a, nil)
	repo.On("UpdateAnswerFields", a.AnswerID, map[string]interface{}{
		"answer_status": model.AnswerStatusRejected,
	}).Return(nil)

	_, err := svc.RejectAnswer(a.AnswerID)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
