package model

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileModel struct {
	UserProfileID       uuid.UUID `gorm:"column:user_profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_profile_id"`
	UserProfileUserID   uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;uniqueIndex" json:"user_profile_user_id"`
	UserProfileFullName *string   `gorm:"column:user_profile_full_name;size:200" json:"user_profile_full_name"`
	UserProfileCreated  time.Time `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdated  time.Time `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}
