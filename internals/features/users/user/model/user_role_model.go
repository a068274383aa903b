package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel: satu role aktif per user. Tanpa record, user dianggap
// role "user" biasa (fail-closed utk kapabilitas contributor/admin).
type UserRoleModel struct {
	UserRoleID        uuid.UUID `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserRoleUserID    uuid.UUID `gorm:"column:user_role_user_id;type:uuid;not null;uniqueIndex" json:"user_role_user_id"`
	UserRoleRole      string    `gorm:"column:user_role_role;type:varchar(20);not null;default:'user'" json:"user_role_role"`
	UserRoleCreatedAt time.Time `gorm:"column:user_role_created_at;autoCreateTime" json:"user_role_created_at"`
	UserRoleUpdatedAt time.Time `gorm:"column:user_role_updated_at;autoUpdateTime" json:"user_role_updated_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
