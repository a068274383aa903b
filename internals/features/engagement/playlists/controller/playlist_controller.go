package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/configs"
	contentDTO "fikrislam_backend/internals/features/content/contents/dto"
	contentModel "fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/engagement/playlists/dto"
	"fikrislam_backend/internals/features/engagement/playlists/model"
	"fikrislam_backend/internals/features/engagement/playlists/service"
	helper "fikrislam_backend/internals/helpers"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

var validatePlaylist = validator.New()

type PlaylistController struct {
	DB      *gorm.DB
	Service *service.PlaylistService
	OSS     *helperOSS.OSSService
}

func NewPlaylistController(db *gorm.DB, oss *helperOSS.OSSService) *PlaylistController {
	return &PlaylistController{
		DB:      db,
		Service: service.NewPlaylistService(service.NewGormPlaylistRepo(db)),
		OSS:     oss,
	}
}

// =======================
// ➕ Create Playlist
// =======================
func (ctrl *PlaylistController) CreatePlaylist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreatePlaylistRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePlaylist.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p, err := ctrl.Service.Create(userID, body.Name, optDesc(body.Description))
	if err != nil {
		log.Println("[ERROR] create playlist:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat playlist")
	}
	return helper.JsonCreated(c, "Playlist dibuat", p)
}

// =======================
// 📄 My Playlists (dengan jumlah item)
// =======================
func (ctrl *PlaylistController) GetMyPlaylists(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PlaylistModel{}).
		Where("playlist_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count playlists")
	}

	var rows []dto.PlaylistDTO
	if err := ctrl.DB.Table("playlists").
		Select(`playlists.playlist_id, playlists.playlist_name, playlists.playlist_description,
			playlists.playlist_created_at,
			COUNT(playlist_items.playlist_item_id) AS item_count`).
		Joins("LEFT JOIN playlist_items ON playlist_items.playlist_item_playlist_id = playlists.playlist_id").
		Where("playlists.playlist_user_id = ?", userID).
		Group("playlists.playlist_id").
		Order("playlists.playlist_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve playlists")
	}
	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 📄 Playlist Detail (item dlm proyeksi publik + signed URL)
// =======================
func (ctrl *PlaylistController) GetPlaylistByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var p model.PlaylistModel
	if err := ctrl.DB.First(&p, "playlist_id = ?", playlistID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Playlist tidak ditemukan")
	}
	if p.PlaylistUserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pemilik playlist ini")
	}

	var items []model.PlaylistItemModel
	if err := ctrl.DB.
		Where("playlist_item_playlist_id = ?", playlistID).
		Order("playlist_item_position ASC").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve playlist items")
	}

	ttl := configs.SignedURLTTL()
	detail := dto.PlaylistDetailDTO{
		PlaylistDTO: dto.PlaylistDTO{
			PlaylistID:          p.PlaylistID,
			PlaylistName:        p.PlaylistName,
			PlaylistDescription: p.PlaylistDescription,
			ItemCount:           int64(len(items)),
			PlaylistCreatedAt:   p.PlaylistCreatedAt,
		},
		Items: make([]dto.PlaylistItemDTO, 0, len(items)),
	}
	for _, item := range items {
		var content contentModel.ContentModel
		if err := ctrl.DB.
			Where("content_id = ? AND content_status = ?",
				item.PlaylistItemContentID, contentModel.StatusApproved).
			First(&content).Error; err != nil {
			// konten sudah ditarik dari katalog: item dilewati, baris dibiarkan
			continue
		}
		coverURL := ""
		if content.ContentCoverImageURL != nil {
			coverURL = helperOSS.ResolveSignedURL(ctrl.OSS, *content.ContentCoverImageURL, ttl)
		}
		detail.Items = append(detail.Items, dto.PlaylistItemDTO{
			PlaylistItemID: item.PlaylistItemID,
			Position:       item.PlaylistItemPosition,
			Content: contentDTO.ToContentPublicDTO(content,
				helperOSS.ResolveSignedURL(ctrl.OSS, content.ContentFileURL, ttl), coverURL),
		})
	}

	return helper.JsonOK(c, "ok", detail)
}

// =======================
// ✏️ Update Playlist
// =======================
func (ctrl *PlaylistController) UpdatePlaylist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.UpdatePlaylistRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePlaylist.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	p, err := ctrl.Service.Update(playlistID, userID, body.Name, optDesc(body.Description))
	if err != nil {
		return mapPlaylistServiceError(c, err, "Failed to update playlist")
	}
	return helper.JsonUpdated(c, "Playlist diperbarui", p)
}

// =======================
// 🗑️ Delete Playlist
// =======================
func (ctrl *PlaylistController) DeletePlaylist(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctrl.Service.Delete(playlistID, userID); err != nil {
		return mapPlaylistServiceError(c, err, "Failed to delete playlist")
	}
	return helper.JsonDeleted(c, "Playlist dihapus", fiber.Map{"playlist_id": playlistID})
}

// =======================
// ➕ Add Item
// =======================
func (ctrl *PlaylistController) AddPlaylistItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.AddPlaylistItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePlaylist.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	added, err := ctrl.Service.AddItem(playlistID, userID, body.ContentID)
	if err != nil {
		return mapPlaylistServiceError(c, err, "Failed to add playlist item")
	}
	if !added {
		return helper.JsonOK(c, "Konten sudah ada di playlist", fiber.Map{
			"playlist_id": playlistID,
			"content_id":  body.ContentID,
			"added":       false,
		})
	}
	return helper.JsonCreated(c, "Konten ditambahkan ke playlist", fiber.Map{
		"playlist_id": playlistID,
		"content_id":  body.ContentID,
		"added":       true,
	})
}

// =======================
// 🗑️ Remove Item
// =======================
func (ctrl *PlaylistController) RemovePlaylistItem(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	playlistID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	contentID, err := uuid.Parse(c.Params("contentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "contentId tidak valid")
	}

	if err := ctrl.Service.RemoveItem(playlistID, userID, contentID); err != nil {
		return mapPlaylistServiceError(c, err, "Failed to remove playlist item")
	}
	return helper.JsonDeleted(c, "Konten dikeluarkan dari playlist", fiber.Map{
		"playlist_id": playlistID,
		"content_id":  contentID,
	})
}

/* ==========================
   utils
========================== */

func optDesc(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapPlaylistServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Playlist tidak ditemukan")
	case errors.Is(err, service.ErrNotPlaylistOwner):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pemilik playlist ini")
	case errors.Is(err, service.ErrItemNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ada di playlist")
	case errors.Is(err, service.ErrContentNotInCatalog):
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	default:
		log.Println("[ERROR]", fallback+":", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
