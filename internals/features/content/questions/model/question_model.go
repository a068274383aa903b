package model

import (
	"time"

	"github.com/google/uuid"
)

// Status jawaban mengikuti siklus moderasi konten
const (
	AnswerStatusPending  = "pending"
	AnswerStatusApproved = "approved"
	AnswerStatusRejected = "rejected"
)

// QuestionModel merepresentasikan tabel questions.
// Kategori memakai tipe konten (book/audio/video) supaya tanya-jawab
// mengelompok per jenis pustaka.
type QuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionCategory  string    `gorm:"column:question_category;type:varchar(10);not null;index" json:"question_category"`
	QuestionText      string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionUserID    uuid.UUID `gorm:"column:question_user_id;type:uuid;not null;index" json:"question_user_id"`
	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// AnswerModel merepresentasikan tabel answers.
// Jawaban admin langsung approved; jawaban kontributor antre moderasi.
type AnswerModel struct {
	AnswerID         uuid.UUID  `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_id"`
	AnswerQuestionID uuid.UUID  `gorm:"column:answer_question_id;type:uuid;not null;index" json:"answer_question_id"`
	AnswerText       string     `gorm:"column:answer_text;type:text;not null" json:"answer_text"`
	AnswerUserID     uuid.UUID  `gorm:"column:answer_user_id;type:uuid;not null;index" json:"answer_user_id"`
	AnswerStatus     string     `gorm:"column:answer_status;type:varchar(10);not null;default:'pending';index" json:"answer_status"`
	AnswerApprovedAt *time.Time `gorm:"column:answer_approved_at" json:"answer_approved_at,omitempty"`
	AnswerCreatedAt  time.Time  `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`
	AnswerUpdatedAt  time.Time  `gorm:"column:answer_updated_at;autoUpdateTime" json:"answer_updated_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
