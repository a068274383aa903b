package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	favoriteRoute "fikrislam_backend/internals/features/engagement/favorites/route"
	playlistRoute "fikrislam_backend/internals/features/engagement/playlists/route"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

func EngagementUserRoutes(user fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	favoriteRoute.FavoriteUserRoutes(user, db, oss)
	playlistRoute.PlaylistUserRoutes(user, db, oss)
}
