package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	qaRoute "fikrislam_backend/internals/features/content/questions/route"
)

func QAPublicRoutes(public fiber.Router, db *gorm.DB) {
	qaRoute.QAPublicRoutes(public, db)
}

func QAUserRoutes(user fiber.Router, db *gorm.DB) {
	qaRoute.QAUserRoutes(user, db)
}

func QAAdminRoutes(admin fiber.Router, db *gorm.DB) {
	qaRoute.QAAdminRoutes(admin, db)
}
