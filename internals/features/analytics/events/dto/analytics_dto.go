package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackEventRequest struct {
	ContentID uuid.UUID              `json:"content_id" validate:"required"`
	Action    string                 `json:"action" validate:"required,oneof=view download play"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type ActionCounts struct {
	Views     int64 `json:"views"`
	Downloads int64 `json:"downloads"`
	Plays     int64 `json:"plays"`
	Total     int64 `json:"total"`
}

type DailyBucket struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

type TopContentEntry struct {
	ContentID    uuid.UUID `json:"content_id"`
	ContentTitle string    `json:"content_title"`
	ContentType  string    `json:"content_type"`
	Views        int64     `json:"views"`
}

type AnalyticsSummaryDTO struct {
	Range            string            `json:"range"`
	Actions          ActionCounts      `json:"actions"`
	PublishedByType  map[string]int64  `json:"published_by_type"`
	ContributorCount int64             `json:"contributor_count"`
	DailyActivity    []DailyBucket     `json:"daily_activity"`
	TopContent       []TopContentEntry `json:"top_content"`
}
