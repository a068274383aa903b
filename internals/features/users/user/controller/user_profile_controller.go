package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fikrislam_backend/internals/features/users/user/dto"
	"fikrislam_backend/internals/features/users/user/model"
	helper "fikrislam_backend/internals/helpers"
)

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// =======================
// 📄 Get My Profile
// =======================
func (ctrl *UserProfileController) GetMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile model.UserProfileModel
	if err := ctrl.DB.Where("user_profile_user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "ok", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve profile")
	}

	return helper.JsonOK(c, "ok", profile)
}

// =======================
// ✏️ Update My Profile
// =======================
func (ctrl *UserProfileController) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUserRole.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec := model.UserProfileModel{
		UserProfileUserID:   userID,
		UserProfileFullName: &body.FullName,
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_profile_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_profile_full_name", "user_profile_updated_at"}),
	}).Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated", rec)
}
