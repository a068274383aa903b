package dto

import (
	"time"

	"fikrislam_backend/internals/features/content/contents/model"
)

/* ============================
   Request DTO
============================ */

// CreateContentRequest: metadata upload (file dikirim multipart terpisah)
type CreateContentRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000"`
	Author      string `json:"author" form:"author" validate:"omitempty,max=200"`
	Type        string `json:"type" form:"type" validate:"required,oneof=book audio video"`
	Language    string `json:"language" form:"language" validate:"omitempty,max=50"`
	Tags        string `json:"tags" form:"tags"` // comma separated, dinormalisasi NormalizeTags
}

// UpdateContentRequest: edit metadata oleh pemilik (type tidak bisa diubah)
type UpdateContentRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	Description string `json:"description" form:"description" validate:"omitempty,max=2000"`
	Author      string `json:"author" form:"author" validate:"omitempty,max=200"`
	Language    string `json:"language" form:"language" validate:"omitempty,max=50"`
	Tags        string `json:"tags" form:"tags"`
}

type RejectContentRequest struct {
	AdminNotes string `json:"admin_notes" form:"admin_notes" validate:"omitempty,max=2000"`
}

/* ============================
   Response DTO
============================ */

// ContentPublicDTO: proyeksi aman untuk publik — TANPA admin_notes dan
// contributor_id. Konversi terpusat di ToContentPublicDTO; jangan
// strip field ad-hoc di call site.
type ContentPublicDTO struct {
	ContentID      string     `json:"content_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Author         *string    `json:"author"`
	Type           string     `json:"type"`
	Language       *string    `json:"language"`
	Tags           []string   `json:"tags"`
	SignedFileURL  string     `json:"signed_file_url"`  // kosong = tautan tidak tersedia
	SignedCoverURL string     `json:"signed_cover_url"` // kosong = tanpa cover
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ContentOwnerDTO: tampilan pemilik/admin — termasuk status & feedback
type ContentOwnerDTO struct {
	ContentID      string     `json:"content_id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Author         *string    `json:"author"`
	Type           string     `json:"type"`
	Language       *string    `json:"language"`
	Tags           []string   `json:"tags"`
	Status         string     `json:"status"`
	AdminNotes     *string    `json:"admin_notes"`
	ContributorID  string     `json:"contributor_id"`
	SignedFileURL  string     `json:"signed_file_url"`
	SignedCoverURL string     `json:"signed_cover_url"`
	PublishedAt    *time.Time `json:"published_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

/* ============================
   Converter
============================ */

func ToContentPublicDTO(m model.ContentModel, signedFileURL, signedCoverURL string) ContentPublicDTO {
	return ContentPublicDTO{
		ContentID:      m.ContentID.String(),
		Title:          m.ContentTitle,
		Description:    m.ContentDescription,
		Author:         m.ContentAuthor,
		Type:           m.ContentType,
		Language:       m.ContentLanguage,
		Tags:           m.ContentTags,
		SignedFileURL:  signedFileURL,
		SignedCoverURL: signedCoverURL,
		PublishedAt:    m.ContentPublishedAt,
		CreatedAt:      m.ContentCreatedAt,
	}
}

func ToContentOwnerDTO(m model.ContentModel, signedFileURL, signedCoverURL string) ContentOwnerDTO {
	return ContentOwnerDTO{
		ContentID:      m.ContentID.String(),
		Title:          m.ContentTitle,
		Description:    m.ContentDescription,
		Author:         m.ContentAuthor,
		Type:           m.ContentType,
		Language:       m.ContentLanguage,
		Tags:           m.ContentTags,
		Status:         m.ContentStatus,
		AdminNotes:     m.ContentAdminNotes,
		ContributorID:  m.ContentContributorID.String(),
		SignedFileURL:  signedFileURL,
		SignedCoverURL: signedCoverURL,
		PublishedAt:    m.ContentPublishedAt,
		CreatedAt:      m.ContentCreatedAt,
		UpdatedAt:      m.ContentUpdatedAt,
	}
}
