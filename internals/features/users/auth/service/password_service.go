package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "fikrislam_backend/internals/features/users/auth/dto"
	authModel "fikrislam_backend/internals/features/users/auth/model"
	authRepo "fikrislam_backend/internals/features/users/auth/repository"
	helper "fikrislam_backend/internals/helpers"
)

// ========================== FORGOT PASSWORD ==========================
// Terbitkan token reset; pengiriman email dilakukan layanan eksternal.
// Respons selalu sama ada/tidaknya email terdaftar (anti user-enumeration).
func ForgotPassword(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, body.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Jika email terdaftar, tautan reset akan dikirim", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	token, expiresAt := GenerateResetToken()
	if err := authRepo.StorePasswordReset(db, &authModel.PasswordResetModel{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}); err != nil {
		log.Println("[ERROR] store password reset:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token reset")
	}

	// TODO: kirim via layanan email saat integrasi SMTP tersedia
	log.Printf("[INFO] password reset token diterbitkan utk user=%s", user.ID)

	return helper.JsonOK(c, "Jika email terdaftar, tautan reset akan dikirim", nil)
}

// ========================== RESET PASSWORD ==========================
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.ResetPasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, err := authRepo.FindActivePasswordReset(db, body.Token)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token reset tidak valid atau kadaluarsa")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, rec.UserID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	_ = authRepo.MarkPasswordResetUsed(db, rec.ID)
	// invalidate semua sesi lama
	_ = authRepo.DeleteRefreshTokensByUser(db, rec.UserID)

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password saat ini salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
