package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	contentModel "fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/engagement/playlists/model"
)

type GormPlaylistRepo struct {
	DB *gorm.DB
}

func NewGormPlaylistRepo(db *gorm.DB) *GormPlaylistRepo {
	return &GormPlaylistRepo{DB: db}
}

func (r *GormPlaylistRepo) FindByID(id uuid.UUID) (*model.PlaylistModel, error) {
	var p model.PlaylistModel
	if err := r.DB.First(&p, "playlist_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPlaylistRepo) Create(p *model.PlaylistModel) error {
	return r.DB.Create(p).Error
}

func (r *GormPlaylistRepo) UpdateMeta(id uuid.UUID, name string, description *string) error {
	return r.DB.Model(&model.PlaylistModel{}).
		Where("playlist_id = ?", id).
		Updates(map[string]interface{}{
			"playlist_name":        name,
			"playlist_description": description,
		}).Error
}

func (r *GormPlaylistRepo) Delete(id uuid.UUID) error {
	return r.DB.Delete(&model.PlaylistModel{}, "playlist_id = ?", id).Error
}

func (r *GormPlaylistRepo) ContentPublished(contentID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.Model(&contentModel.ContentModel{}).
		Where("content_id = ? AND content_status = ?", contentID, contentModel.StatusApproved).
		Count(&n).Error
	return n > 0, err
}

func (r *GormPlaylistRepo) NextPosition(playlistID uuid.UUID) (int, error) {
	var maxPos int
	err := r.DB.Model(&model.PlaylistItemModel{}).
		Where("playlist_item_playlist_id = ?", playlistID).
		Select("COALESCE(MAX(playlist_item_position), 0)").
		Scan(&maxPos).Error
	return maxPos + 1, err
}

func (r *GormPlaylistRepo) InsertItem(item *model.PlaylistItemModel) error {
	return r.DB.Create(item).Error
}

func (r *GormPlaylistRepo) RemoveItem(playlistID, contentID uuid.UUID) (int64, error) {
	res := r.DB.
		Where("playlist_item_playlist_id = ? AND playlist_item_content_id = ?", playlistID, contentID).
		Delete(&model.PlaylistItemModel{})
	return res.RowsAffected, res.Error
}
