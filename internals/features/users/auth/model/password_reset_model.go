package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetModel token reset password sekali pakai.
// Pengiriman email ditangani layanan eksternal; backend hanya menerbitkan
// dan memvalidasi token.
type PasswordResetModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Token     string     `gorm:"type:text;not null;uniqueIndex" json:"token"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordResetModel) TableName() string {
	return "password_resets"
}
