package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	contentModel "fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/engagement/favorites/model"
)

type GormFavoriteRepo struct {
	DB *gorm.DB
}

func NewGormFavoriteRepo(db *gorm.DB) *GormFavoriteRepo {
	return &GormFavoriteRepo{DB: db}
}

func (r *GormFavoriteRepo) ContentPublished(contentID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.Model(&contentModel.ContentModel{}).
		Where("content_id = ? AND content_status = ?", contentID, contentModel.StatusApproved).
		Count(&n).Error
	return n > 0, err
}

func (r *GormFavoriteRepo) Exists(userID, contentID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.Model(&model.FavoriteModel{}).
		Where("favorite_user_id = ? AND favorite_content_id = ?", userID, contentID).
		Count(&n).Error
	return n > 0, err
}

func (r *GormFavoriteRepo) Insert(userID, contentID uuid.UUID) error {
	return r.DB.Create(&model.FavoriteModel{
		FavoriteUserID:    userID,
		FavoriteContentID: contentID,
	}).Error
}

func (r *GormFavoriteRepo) Remove(userID, contentID uuid.UUID) error {
	return r.DB.
		Where("favorite_user_id = ? AND favorite_content_id = ?", userID, contentID).
		Delete(&model.FavoriteModel{}).Error
}
