// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/users/user/controller"
)

// UserUserRoutes: profil milik sendiri (base: /api/u)
func UserUserRoutes(user fiber.Router, db *gorm.DB) {
	profileController := controller.NewUserProfileController(db)

	profile := user.Group("/profile")
	profile.Get("/", profileController.GetMyProfile)
	profile.Put("/", profileController.UpdateMyProfile)
}

// UserAdminRoutes: manajemen user & role (base: /api/a)
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	roleController := controller.NewUserRoleController(db)

	users := admin.Group("/users")
	users.Get("/", roleController.GetAllUsers)
	users.Put("/:userId/role", roleController.ChangeUserRole)
}
