package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/configs"
	contentDTO "fikrislam_backend/internals/features/content/contents/dto"
	contentModel "fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/engagement/favorites/service"
	helper "fikrislam_backend/internals/helpers"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

type FavoriteController struct {
	DB      *gorm.DB
	Service *service.FavoriteService
	OSS     *helperOSS.OSSService
}

func NewFavoriteController(db *gorm.DB, oss *helperOSS.OSSService) *FavoriteController {
	return &FavoriteController{
		DB:      db,
		Service: service.NewFavoriteService(service.NewGormFavoriteRepo(db)),
		OSS:     oss,
	}
}

// =======================
// 🔄 Toggle Favorite
// =======================
func (ctrl *FavoriteController) ToggleFavorite(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	contentID, err := uuid.Parse(c.Params("contentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "contentId tidak valid")
	}

	favorited, err := ctrl.Service.Toggle(userID, contentID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotAvailable) {
			return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		log.Println("[ERROR] toggle favorite:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle favorite")
	}

	msg := "Dihapus dari favorit"
	if favorited {
		msg = "Ditambahkan ke favorit"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"content_id": contentID,
		"favorited":  favorited,
	})
}

// =======================
// 📄 My Favorites
// =======================
// Konten yang ditarik dari katalog (bukan approved lagi) otomatis
// hilang dari daftar, barisnya sendiri dibiarkan.
func (ctrl *FavoriteController) GetMyFavorites(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)

	base := ctrl.DB.Table("favorites").
		Joins("JOIN contents ON contents.content_id = favorites.favorite_content_id").
		Where("favorites.favorite_user_id = ? AND contents.content_status = ?",
			userID, contentModel.StatusApproved)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count favorites")
	}

	var items []contentModel.ContentModel
	if err := base.Select("contents.*").
		Order("favorites.favorite_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve favorites")
	}

	ttl := configs.SignedURLTTL()
	resp := make([]contentDTO.ContentPublicDTO, 0, len(items))
	for _, m := range items {
		coverURL := ""
		if m.ContentCoverImageURL != nil {
			coverURL = helperOSS.ResolveSignedURL(ctrl.OSS, *m.ContentCoverImageURL, ttl)
		}
		resp = append(resp, contentDTO.ToContentPublicDTO(m,
			helperOSS.ResolveSignedURL(ctrl.OSS, m.ContentFileURL, ttl), coverURL))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
