package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	"fikrislam_backend/internals/features/content/contents/dto"
	"fikrislam_backend/internals/features/content/contents/model"
	helper "fikrislam_backend/internals/helpers"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

type ContentPublicController struct {
	DB  *gorm.DB
	OSS *helperOSS.OSSService
}

func NewContentPublicController(db *gorm.DB, oss *helperOSS.OSSService) *ContentPublicController {
	return &ContentPublicController{DB: db, OSS: oss}
}

// =======================
// 📄 Browse Published Content
// =======================
// Katalog publik hanya memuat item approved, dalam proyeksi publik
// (tanpa admin_notes & contributor_id). Filter: ?type, ?language,
// ?tag, ?search (judul/deskripsi/penulis, case-insensitive).
func (ctrl *ContentPublicController) BrowseContent(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.ContentModel{}).
		Where("content_status = ?", model.StatusApproved)

	if ctype := c.Query("type"); ctype != "" {
		if !constants.ValidContentType(ctype) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipe konten tidak dikenal")
		}
		q = q.Where("content_type = ?", ctype)
	}
	if lang := c.Query("language"); lang != "" {
		q = q.Where("content_language = ?", lang)
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("? = ANY(content_tags)", strings.ToLower(strings.TrimSpace(tag)))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("(content_title ILIKE ? OR content_description ILIKE ? OR content_author ILIKE ?)",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count content")
	}

	var items []model.ContentModel
	if err := q.Order("content_published_at DESC NULLS LAST").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	ttl := signedTTL()
	resp := make([]dto.ContentPublicDTO, 0, len(items))
	for _, m := range items {
		resp = append(resp, dto.ToContentPublicDTO(m,
			helperOSS.ResolveSignedURL(ctrl.OSS, m.ContentFileURL, ttl),
			resolveOptional(ctrl.OSS, m.ContentCoverImageURL, ttl)))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 📄 Content Detail (public)
// =======================
// Item yang belum/tidak approved diperlakukan seolah tidak ada (404),
// supaya keberadaan item pending/rejected tidak bocor.
func (ctrl *ContentPublicController) GetContentByID(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var m model.ContentModel
	if err := ctrl.DB.
		Where("content_id = ? AND content_status = ?", contentID, model.StatusApproved).
		First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}

	ttl := signedTTL()
	return helper.JsonOK(c, "ok", dto.ToContentPublicDTO(m,
		helperOSS.ResolveSignedURL(ctrl.OSS, m.ContentFileURL, ttl),
		resolveOptional(ctrl.OSS, m.ContentCoverImageURL, ttl)))
}
