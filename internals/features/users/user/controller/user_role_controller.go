package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fikrislam_backend/internals/features/users/user/dto"
	"fikrislam_backend/internals/features/users/user/model"
	helper "fikrislam_backend/internals/helpers"
)

var validateUserRole = validator.New()

type UserRoleController struct {
	DB *gorm.DB
}

func NewUserRoleController(db *gorm.DB) *UserRoleController {
	return &UserRoleController{DB: db}
}

// =======================
// 📄 Get All Users + Role (admin)
// =======================
func (ctrl *UserRoleController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	var total int64
	if err := ctrl.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []dto.UserWithRoleDTO
	if err := ctrl.DB.
		Table("users").
		Select(`users.id AS user_id,
			users.user_name,
			users.email,
			users.is_active,
			users.created_at,
			user_profiles.user_profile_full_name AS full_name,
			COALESCE(user_roles.user_role_role, 'user') AS role`).
		Joins("LEFT JOIN user_roles ON user_roles.user_role_user_id = users.id").
		Joins("LEFT JOIN user_profiles ON user_profiles.user_profile_user_id = users.id").
		Order("users.created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔁 Change User Role (admin)
// =======================
// Catatan: sesi aktif user ybs masih membawa role lama sampai
// refresh/login ulang (staleness yang disengaja, bukan bug).
func (ctrl *UserRoleController) ChangeUserRole(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	var body dto.ChangeRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUserRole.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Select("id").First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	rec := model.UserRoleModel{
		UserRoleUserID: targetID,
		UserRoleRole:   body.Role,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_role_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_role_role", "user_role_updated_at"}),
	}).Create(&rec).Error; err != nil {
		log.Println("[ERROR] change role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helper.JsonUpdated(c, "Role updated successfully", fiber.Map{
		"user_id": targetID,
		"role":    body.Role,
	})
}
