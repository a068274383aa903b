package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status konten: pending → approved | rejected.
// Resubmit (edit item rejected oleh pemilik) mengembalikan ke pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type ContentModel struct {
	ContentID            uuid.UUID      `gorm:"column:content_id;type:uuid;default:gen_random_uuid();primaryKey" json:"content_id"`
	ContentTitle         string         `gorm:"column:content_title;size:200;not null" json:"content_title"`
	ContentDescription   *string        `gorm:"column:content_description;type:text" json:"content_description"`
	ContentAuthor        *string        `gorm:"column:content_author;size:200" json:"content_author"`
	ContentType          string         `gorm:"column:content_type;type:varchar(10);not null" json:"content_type"` // book|audio|video, immutable
	ContentLanguage      *string        `gorm:"column:content_language;size:50" json:"content_language"`
	ContentTags          pq.StringArray `gorm:"column:content_tags;type:text[]" json:"content_tags"`
	ContentFileURL       string         `gorm:"column:content_file_url;type:text;not null" json:"content_file_url"` // OSS key, wajib saat create
	ContentCoverImageURL *string        `gorm:"column:content_cover_image_url;type:text" json:"content_cover_image_url"`
	ContentStatus        string         `gorm:"column:content_status;type:varchar(10);not null;default:'pending';index" json:"content_status"`
	ContentAdminNotes    *string        `gorm:"column:content_admin_notes;type:text" json:"content_admin_notes"`
	ContentPublishedAt   *time.Time     `gorm:"column:content_published_at" json:"content_published_at"` // diisi sekali saat approve pertama
	ContentContributorID uuid.UUID      `gorm:"column:content_contributor_id;type:uuid;not null;index" json:"content_contributor_id"`
	ContentCreatedAt     time.Time      `gorm:"column:content_created_at;autoCreateTime" json:"content_created_at"`
	ContentUpdatedAt     time.Time      `gorm:"column:content_updated_at;autoUpdateTime" json:"content_updated_at"`
}

func (ContentModel) TableName() string {
	return "contents"
}

// ValidStatus cek string status dikenal
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
