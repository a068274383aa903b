package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel merepresentasikan tabel favorites.
// Satu user hanya punya satu baris per konten (unique pair).
type FavoriteModel struct {
	FavoriteID        uuid.UUID `gorm:"column:favorite_id;type:uuid;default:gen_random_uuid();primaryKey" json:"favorite_id"`
	FavoriteUserID    uuid.UUID `gorm:"column:favorite_user_id;type:uuid;not null;uniqueIndex:idx_favorite_user_content" json:"favorite_user_id"`
	FavoriteContentID uuid.UUID `gorm:"column:favorite_content_id;type:uuid;not null;uniqueIndex:idx_favorite_user_content" json:"favorite_content_id"`
	FavoriteCreatedAt time.Time `gorm:"column:favorite_created_at;autoCreateTime" json:"favorite_created_at"`
}

func (FavoriteModel) TableName() string {
	return "favorites"
}
