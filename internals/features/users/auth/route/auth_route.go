// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/users/auth/controller"
	rateLimiter "fikrislam_backend/internals/middlewares"
	authMiddleware "fikrislam_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.Refresh)
	baseAuth.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	baseAuth.Post("/forgot-password/reset", authController.ResetPassword)

	// 🔒 Perlu token
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
	protectedAuth.Get("/me", authController.Me)
}
