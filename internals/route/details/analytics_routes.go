package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "fikrislam_backend/internals/features/analytics/events/route"
)

func AnalyticsPublicRoutes(public fiber.Router, db *gorm.DB) {
	analyticsRoute.AnalyticsPublicRoutes(public, db)
}

func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}
