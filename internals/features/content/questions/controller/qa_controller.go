package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/features/content/questions/dto"
	"fikrislam_backend/internals/features/content/questions/model"
	"fikrislam_backend/internals/features/content/questions/service"
	helper "fikrislam_backend/internals/helpers"
)

var validateQA = validator.New()

type QAController struct {
	DB      *gorm.DB
	Service *service.QAService
}

func NewQAController(db *gorm.DB) *QAController {
	return &QAController{
		DB:      db,
		Service: service.NewQAService(service.NewGormQARepo(db)),
	}
}

/* ==========================
   Public
========================== */

// 📄 Daftar pertanyaan (publik). Jawaban yang disertakan hanya
// yang approved; jumlah jawaban memakai hitungan approved juga
// supaya angka di katalog konsisten dgn isi yang terlihat.
func (ctrl *QAController) GetQuestions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.QuestionModel{})
	if category := c.Query("category"); category != "" {
		q = q.Where("question_category = ?", category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.QuestionModel
	if err := q.Order("question_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.QuestionWithAnswersDTO, 0, len(questions))
	for _, question := range questions {
		answers, count, err := ctrl.approvedAnswers(question.QuestionID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve answers")
		}
		resp = append(resp, dto.QuestionWithAnswersDTO{
			Question:    question,
			AnswerCount: count,
			Answers:     answers,
		})
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 📄 Detail satu pertanyaan + jawaban approved
func (ctrl *QAController) GetQuestionByID(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", questionID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}

	answers, count, err := ctrl.approvedAnswers(questionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve answers")
	}
	return helper.JsonOK(c, "ok", dto.QuestionWithAnswersDTO{
		Question:    question,
		AnswerCount: count,
		Answers:     answers,
	})
}

/* ==========================
   Authenticated users
========================== */

// ➕ Ajukan pertanyaan
func (ctrl *QAController) CreateQuestion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQA.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question, err := ctrl.Service.Ask(userID, body.Category, body.Text)
	if err != nil {
		log.Println("[ERROR] create question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pertanyaan")
	}
	return helper.JsonCreated(c, "Pertanyaan terkirim", question)
}

// ✏️ Edit pertanyaan sendiri (hanya sebelum ada jawaban)
func (ctrl *QAController) UpdateMyQuestion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQA.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	question, err := ctrl.Service.EditQuestion(questionID, userID, body.Text)
	if err != nil {
		return mapQAServiceError(c, err, "Failed to update question")
	}
	return helper.JsonUpdated(c, "Pertanyaan diperbarui", question)
}

// 🗑️ Hapus pertanyaan sendiri (hanya sebelum ada jawaban)
func (ctrl *QAController) DeleteMyQuestion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctrl.Service.DeleteQuestion(questionID, userID); err != nil {
		return mapQAServiceError(c, err, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Pertanyaan dihapus", fiber.Map{"question_id": questionID})
}

// 📄 Pertanyaan saya, beserta SEMUA jawabannya (termasuk pending)
// supaya penanya tahu ada jawaban yang sedang dimoderasi.
func (ctrl *QAController) GetMyQuestions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)
	q := ctrl.DB.Model(&model.QuestionModel{}).Where("question_user_id = ?", userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.QuestionModel
	if err := q.Order("question_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.QuestionWithAnswersDTO, 0, len(questions))
	for _, question := range questions {
		answers, err := ctrl.answersWithNames(question.QuestionID, "")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve answers")
		}
		resp = append(resp, dto.QuestionWithAnswersDTO{
			Question:    question,
			AnswerCount: int64(len(answers)),
			Answers:     answers,
		})
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ==========================
   Contributor & Admin
========================== */

// ➕ Jawab pertanyaan — jawaban admin tayang langsung,
// jawaban kontributor masuk antrean moderasi.
func (ctrl *QAController) CreateAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	questionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.CreateAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQA.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	answer, err := ctrl.Service.SubmitAnswer(questionID, userID, helper.GetRoleFromToken(c), body.Text)
	if err != nil {
		return mapQAServiceError(c, err, "Failed to submit answer")
	}

	msg := "Jawaban terkirim dan menunggu review admin"
	if answer.AnswerStatus == model.AnswerStatusApproved {
		msg = "Jawaban dipublikasikan"
	}
	return helper.JsonCreated(c, msg, answer)
}

// 📄 Antrean jawaban pending (admin)
func (ctrl *QAController) GetPendingAnswers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.AnswerModel{}).
		Where("answer_status = ?", model.AnswerStatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count answers")
	}

	var rows []dto.AnswerDTO
	if err := ctrl.DB.Table("answers").
		Select(`answers.answer_id, answers.answer_question_id, answers.answer_text,
			answers.answer_user_id, COALESCE(users.user_name, '') AS answer_user_name,
			answers.answer_status, answers.answer_approved_at, answers.answer_created_at`).
		Joins("LEFT JOIN users ON users.id = answers.answer_user_id").
		Where("answers.answer_status = ?", model.AnswerStatusPending).
		Order("answers.answer_created_at ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve answers")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ Setujui jawaban (admin)
func (ctrl *QAController) ApproveAnswer(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	answer, err := ctrl.Service.ApproveAnswer(answerID)
	if err != nil {
		return mapQAServiceError(c, err, "Failed to approve answer")
	}
	return helper.JsonUpdated(c, "Jawaban dipublikasikan", answer)
}

// ❌ Tolak jawaban (admin)
func (ctrl *QAController) RejectAnswer(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	answer, err := ctrl.Service.RejectAnswer(answerID)
	if err != nil {
		return mapQAServiceError(c, err, "Failed to reject answer")
	}
	return helper.JsonUpdated(c, "Jawaban ditolak", answer)
}

/* ==========================
   utils
========================== */

func (ctrl *QAController) approvedAnswers(questionID uuid.UUID) ([]dto.AnswerDTO, int64, error) {
	rows, err := ctrl.answersWithNames(questionID, model.AnswerStatusApproved)
	if err != nil {
		return nil, 0, err
	}
	return rows, int64(len(rows)), nil
}

// answersWithNames: status kosong = semua status
func (ctrl *QAController) answersWithNames(questionID uuid.UUID, status string) ([]dto.AnswerDTO, error) {
	q := ctrl.DB.Table("answers").
		Select(`answers.answer_id, answers.answer_question_id, answers.answer_text,
			answers.answer_user_id, COALESCE(users.user_name, '') AS answer_user_name,
			answers.answer_status, answers.answer_approved_at, answers.answer_created_at`).
		Joins("LEFT JOIN users ON users.id = answers.answer_user_id").
		Where("answers.answer_question_id = ?", questionID)
	if status != "" {
		q = q.Where("answers.answer_status = ?", status)
	}

	var rows []dto.AnswerDTO
	if err := q.Order("answers.answer_created_at ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func mapQAServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	case errors.Is(err, service.ErrAnswerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban tidak ditemukan")
	case errors.Is(err, service.ErrNotAuthor):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan penulis pertanyaan ini")
	case errors.Is(err, service.ErrQuestionFrozen):
		return helper.JsonError(c, fiber.StatusConflict, "Pertanyaan yang sudah dijawab tidak bisa diubah/dihapus")
	case errors.Is(err, service.ErrAnswerNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya kontributor dan admin yang boleh menjawab")
	default:
		log.Println("[ERROR]", fallback+":", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
