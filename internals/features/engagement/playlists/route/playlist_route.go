// file: internals/features/engagement/playlists/route/playlist_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "fikrislam_backend/internals/features/engagement/playlists/controller"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

// PlaylistUserRoutes: playlist pribadi (base: /api/u)
func PlaylistUserRoutes(user fiber.Router, db *gorm.DB, oss *helperOSS.OSSService) {
	playlistController := controller.NewPlaylistController(db, oss)

	playlists := user.Group("/playlists")
	playlists.Post("/", playlistController.CreatePlaylist)
	playlists.Get("/", playlistController.GetMyPlaylists)
	playlists.Get("/:id", playlistController.GetPlaylistByID)
	playlists.Put("/:id", playlistController.UpdatePlaylist)
	playlists.Delete("/:id", playlistController.DeletePlaylist)

	playlists.Post("/:id/items", playlistController.AddPlaylistItem)
	playlists.Delete("/:id/items/:contentId", playlistController.RemovePlaylistItem)
}
