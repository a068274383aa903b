package dto

import (
	"time"

	"github.com/google/uuid"

	"fikrislam_backend/internals/features/content/questions/model"
)

type CreateQuestionRequest struct {
	Category string `json:"category" validate:"required,oneof=book audio video"`
	Text     string `json:"text" validate:"required,min=10,max=2000"`
}

type UpdateQuestionRequest struct {
	Text string `json:"text" validate:"required,min=10,max=2000"`
}

type CreateAnswerRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

type RejectAnswerRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// AnswerDTO membawa nama penjawab hasil join dgn users
type AnswerDTO struct {
	AnswerID         uuid.UUID  `json:"answer_id"`
	AnswerQuestionID uuid.UUID  `json:"answer_question_id"`
	AnswerText       string     `json:"answer_text"`
	AnswerUserID     uuid.UUID  `json:"answer_user_id"`
	AnswerUserName   string     `json:"answer_user_name,omitempty"`
	AnswerStatus     string     `json:"answer_status"`
	AnswerApprovedAt *time.Time `json:"answer_approved_at,omitempty"`
	AnswerCreatedAt  time.Time  `json:"answer_created_at"`
}

type QuestionWithAnswersDTO struct {
	Question    model.QuestionModel `json:"question"`
	AnswerCount int64               `json:"answer_count"`
	Answers     []AnswerDTO         `json:"answers"`
}

func ToAnswerDTO(m model.AnswerModel, userName string) AnswerDTO {
	return AnswerDTO{
		AnswerID:         m.AnswerID,
		AnswerQuestionID: m.AnswerQuestionID,
		AnswerText:       m.AnswerText,
		AnswerUserID:     m.AnswerUserID,
		AnswerUserName:   userName,
		AnswerStatus:     m.AnswerStatus,
		AnswerApprovedAt: m.AnswerApprovedAt,
		AnswerCreatedAt:  m.AnswerCreatedAt,
	}
}
