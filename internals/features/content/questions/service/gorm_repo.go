package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/features/content/questions/model"
)

type GormQARepo struct {
	DB *gorm.DB
}

func NewGormQARepo(db *gorm.DB) *GormQARepo {
	return &GormQARepo{DB: db}
}

func (r *GormQARepo) FindQuestionByID(id uuid.UUID) (*model.QuestionModel, error) {
	var q model.QuestionModel
	if err := r.DB.First(&q, "question_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *GormQARepo) CreateQuestion(q *model.QuestionModel) error {
	return r.DB.Create(q).Error
}

func (r *GormQARepo) UpdateQuestionText(id uuid.UUID, text string) error {
	return r.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", id).
		Update("question_text", text).Error
}

func (r *GormQARepo) DeleteQuestion(id uuid.UUID) error {
	// jawaban ikut terhapus via FK ON DELETE CASCADE
	return r.DB.Delete(&model.QuestionModel{}, "question_id = ?", id).Error
}

func (r *GormQARepo) CountAnswers(questionID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.Model(&model.AnswerModel{}).
		Where("answer_question_id = ?", questionID).
		Count(&n).Error
	return n, err
}

func (r *GormQARepo) FindAnswerByID(id uuid.UUID) (*model.AnswerModel, error) {
	var a model.AnswerModel
	if err := r.DB.First(&a, "answer_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormQARepo) CreateAnswer(a *model.AnswerModel) error {
	return r.DB.Create(a).Error
}

func (r *GormQARepo) UpdateAnswerFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.DB.Model(&model.AnswerModel{}).
		Where("answer_id = ?", id).
		Updates(fields).Error
}
