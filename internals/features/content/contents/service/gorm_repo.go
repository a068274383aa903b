package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/features/content/contents/model"
)

// GormContentRepo implementasi ContentRepo di atas Postgres
type GormContentRepo struct {
	DB *gorm.DB
}

func NewGormContentRepo(db *gorm.DB) *GormContentRepo {
	return &GormContentRepo{DB: db}
}

func (r *GormContentRepo) FindByID(id uuid.UUID) (*model.ContentModel, error) {
	var m model.ContentModel
	if err := r.DB.First(&m, "content_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormContentRepo) Create(m *model.ContentModel) error {
	return r.DB.Create(m).Error
}

func (r *GormContentRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	return r.DB.Model(&model.ContentModel{}).
		Where("content_id = ?", id).
		Updates(fields).Error
}

func (r *GormContentRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.ContentModel{}, "content_id = ?", id).Error
}
