package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "fikrislam_backend/internals/features/users/auth/repository"
	authService "fikrislam_backend/internals/features/users/auth/service"
	helper "fikrislam_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ctrl.DB, c)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctrl.DB, c)
}

func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctrl.DB, c)
}

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	return authService.Refresh(ctrl.DB, c)
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctrl.DB, c)
}

func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return authService.ForgotPassword(ctrl.DB, c)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	return authService.ResetPassword(ctrl.DB, c)
}

func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctrl.DB, c)
}

// =======================
// 👤 Me (identitas + role sesi)
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      helper.GetRoleFromToken(c),
	})
}
