// file: internals/features/analytics/events/route/analytics_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/analytics/events/controller"
)

// AnalyticsPublicRoutes: pencatatan event (base: /api/public).
// Tanpa auth — pengunjung anonim ikut tercatat.
func AnalyticsPublicRoutes(public fiber.Router, db *gorm.DB) {
	analyticsController := controller.NewAnalyticsController(db)

	public.Post("/analytics/track", analyticsController.TrackEvent)
}

// AnalyticsAdminRoutes: ringkasan utk dashboard admin (base: /api/a)
func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	analyticsController := controller.NewAnalyticsController(db)

	admin.Get("/analytics/summary", analyticsController.GetSummary)
}
