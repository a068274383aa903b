package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "fikrislam_backend/internals/features/users/user/route"
)

func UserUserRoutes(user fiber.Router, db *gorm.DB) {
	userRoute.UserUserRoutes(user, db)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(admin, db)
}
