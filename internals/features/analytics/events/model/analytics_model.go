package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionView     = "view"
	ActionDownload = "download"
	ActionPlay     = "play"
)

// ContentAnalyticsModel merepresentasikan tabel content_analytics.
// user_id nullable: event dari pengunjung anonim tetap dicatat.
type ContentAnalyticsModel struct {
	AnalyticsID        uuid.UUID      `gorm:"column:analytics_id;type:uuid;default:gen_random_uuid();primaryKey" json:"analytics_id"`
	AnalyticsContentID uuid.UUID      `gorm:"column:analytics_content_id;type:uuid;not null;index" json:"analytics_content_id"`
	AnalyticsUserID    *uuid.UUID     `gorm:"column:analytics_user_id;type:uuid;index" json:"analytics_user_id,omitempty"`
	AnalyticsAction    string         `gorm:"column:analytics_action;type:varchar(10);not null;index" json:"analytics_action"`
	AnalyticsMetadata  datatypes.JSON `gorm:"column:analytics_metadata" json:"analytics_metadata,omitempty"`
	AnalyticsCreatedAt time.Time      `gorm:"column:analytics_created_at;autoCreateTime;index" json:"analytics_created_at"`
}

func (ContentAnalyticsModel) TableName() string {
	return "content_analytics"
}

func ValidAction(a string) bool {
	return a == ActionView || a == ActionDownload || a == ActionPlay
}
