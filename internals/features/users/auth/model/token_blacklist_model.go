package model

import (
	"time"
)

// TokenBlacklistModel menyimpan access token yang sudah di-logout
// sampai kadaluarsa (dibersihkan scheduler).
type TokenBlacklistModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"type:text;not null;index" json:"token"`
	ExpiredAt time.Time `gorm:"not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
