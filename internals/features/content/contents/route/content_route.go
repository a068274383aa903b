// file: internals/features/content/contents/route/content_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/content/contents/controller"
	helperOSS "fikrislam_backend/internals/helpers/oss"
	rateLimiter "fikrislam_backend/internals/middlewares"
)

// ContentPublicRoutes: katalog konten approved (base: /api/public)
func ContentPublicRoutes(public fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	publicController := controller.NewContentPublicController(db, oss)

	content := public.Group("/content")
	content.Get("/", publicController.BrowseContent)
	content.Get("/:id", publicController.GetContentByID)
}

// ContentContributorRoutes: kelola karya sendiri (base: /api/c)
func ContentContributorRoutes(contributor fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	contributorController := controller.NewContentContributorController(db, oss)

	content := contributor.Group("/content")
	content.Post("/", rateLimiter.UploadRateLimiter(), contributorController.UploadContent)
	content.Get("/", contributorController.GetMyContent)
	content.Put("/:id", contributorController.UpdateMyContent)
	content.Delete("/:id", contributorController.DeleteMyContent)

	contributor.Get("/stats", contributorController.GetMyStats)
}

// ContentAdminRoutes: antrean review & moderasi (base: /api/a)
func ContentAdminRoutes(admin fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	adminController := controller.NewContentAdminController(db, oss)

	content := admin.Group("/content")
	content.Get("/", adminController.GetAllContent)
	content.Put("/:id/approve", adminController.ApproveContent)
	content.Put("/:id/reject", adminController.RejectContent)
	content.Put("/:id/pending", adminController.SetPendingContent)
	content.Delete("/:id", adminController.DeleteContent)

	admin.Get("/contributors/stats", adminController.GetContributorStats)
}
