package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel merepresentasikan tabel playlists (milik satu user)
type PlaylistModel struct {
	PlaylistID          uuid.UUID `gorm:"column:playlist_id;type:uuid;default:gen_random_uuid();primaryKey" json:"playlist_id"`
	PlaylistUserID      uuid.UUID `gorm:"column:playlist_user_id;type:uuid;not null;index" json:"playlist_user_id"`
	PlaylistName        string    `gorm:"column:playlist_name;size:100;not null" json:"playlist_name"`
	PlaylistDescription *string   `gorm:"column:playlist_description;type:text" json:"playlist_description,omitempty"`
	PlaylistCreatedAt   time.Time `gorm:"column:playlist_created_at;autoCreateTime" json:"playlist_created_at"`
	PlaylistUpdatedAt   time.Time `gorm:"column:playlist_updated_at;autoUpdateTime" json:"playlist_updated_at"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistItemModel merepresentasikan tabel playlist_items.
// Pasangan (playlist, konten) unik; posisi menentukan urutan tampil.
type PlaylistItemModel struct {
	PlaylistItemID         uuid.UUID `gorm:"column:playlist_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"playlist_item_id"`
	PlaylistItemPlaylistID uuid.UUID `gorm:"column:playlist_item_playlist_id;type:uuid;not null;uniqueIndex:idx_playlist_item_pair" json:"playlist_item_playlist_id"`
	PlaylistItemContentID  uuid.UUID `gorm:"column:playlist_item_content_id;type:uuid;not null;uniqueIndex:idx_playlist_item_pair" json:"playlist_item_content_id"`
	PlaylistItemPosition   int       `gorm:"column:playlist_item_position;not null;default:0" json:"playlist_item_position"`
	PlaylistItemCreatedAt  time.Time `gorm:"column:playlist_item_created_at;autoCreateTime" json:"playlist_item_created_at"`
}

func (PlaylistItemModel) TableName() string {
	return "playlist_items"
}
