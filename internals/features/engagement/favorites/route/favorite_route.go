// file: internals/features/engagement/favorites/route/favorite_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/engagement/favorites/controller"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

// FavoriteUserRoutes: toggle & daftar favorit (base: /api/u)
func FavoriteUserRoutes(user fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	favoriteController := controller.NewFavoriteController(db, oss)

	favorites := user.Group("/favorites")
	favorites.Get("/", favoriteController.GetMyFavorites)
	favorites.Post("/:contentId/toggle", favoriteController.ToggleFavorite)
}
