package dto

import (
	"time"

	"github.com/google/uuid"

	contentDTO "fikrislam_backend/internals/features/content/contents/dto"
)

type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type AddPlaylistItemRequest struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
}

type PlaylistDTO struct {
	PlaylistID          uuid.UUID `json:"playlist_id"`
	PlaylistName        string    `json:"playlist_name"`
	PlaylistDescription *string   `json:"playlist_description,omitempty"`
	ItemCount           int64     `json:"item_count"`
	PlaylistCreatedAt   time.Time `json:"playlist_created_at"`
}

type PlaylistItemDTO struct {
	PlaylistItemID uuid.UUID                   `json:"playlist_item_id"`
	Position       int                         `json:"position"`
	Content        contentDTO.ContentPublicDTO `json:"content"`
}

type PlaylistDetailDTO struct {
	PlaylistDTO
	Items []PlaylistItemDTO `json:"items"`
}
