package dto

import "time"

// ============================
// Response DTO
// ============================

type UserWithRoleDTO struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Request DTO
// ============================

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user contributor admin"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
}
