package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentRoute "fikrislam_backend/internals/features/content/contents/route"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

func ContentPublicRoutes(public fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	contentRoute.ContentPublicRoutes(public, db, oss)
}

func ContentContributorRoutes(contributor fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	contentRoute.ContentContributorRoutes(contributor, db, oss)
}

func ContentAdminRoutes(admin fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	contentRoute.ContentAdminRoutes(admin, db, oss)
}
