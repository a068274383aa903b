package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	"fikrislam_backend/internals/features/content/contents/dto"
	"fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/content/contents/service"
	helper "fikrislam_backend/internals/helpers"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

type ContentAdminController struct {
	DB      *gorm.DB
	Service *service.ContentService
	OSS     *helperOSS.OSSService
}

func NewContentAdminController(db *gorm.DB, oss *helperOSS.OSSService) *ContentAdminController {
	return &ContentAdminController{
		DB:      db,
		Service: service.NewContentService(service.NewGormContentRepo(db)),
		OSS:     oss,
	}
}

// =======================
// 📄 Review Queue & All Content (admin)
// =======================
// Default antrian review = pending terlama dulu (FIFO). Admin bisa
// minta status lain atau semua status lewat query ?status=.
func (ctrl *ContentAdminController) GetAllContent(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	status := c.Query("status", model.StatusPending)
	q := ctrl.DB.Model(&model.ContentModel{})
	switch status {
	case "all":
		// tanpa filter status
	default:
		if !model.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("content_status = ?", status)
	}
	if ctype := c.Query("type"); ctype != "" {
		if !constants.ValidContentType(ctype) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tipe konten tidak dikenal")
		}
		q = q.Where("content_type = ?", ctype)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count content")
	}

	order := "content_created_at ASC" // antrian review
	if status != model.StatusPending {
		order = "content_created_at DESC"
	}

	var items []model.ContentModel
	if err := q.Order(order).
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	ttl := signedTTL()
	resp := make([]dto.ContentOwnerDTO, 0, len(items))
	for _, m := range items {
		resp = append(resp, dto.ToContentOwnerDTO(m,
			helperOSS.ResolveSignedURL(ctrl.OSS, m.ContentFileURL, ttl),
			resolveOptional(ctrl.OSS, m.ContentCoverImageURL, ttl)))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ✅ Approve
// =======================
func (ctrl *ContentAdminController) ApproveContent(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	updated, err := ctrl.Service.Approve(contentID)
	if err != nil {
		return mapContentServiceError(c, err, "Failed to approve content")
	}

	ttl := signedTTL()
	return helper.JsonUpdated(c, "Konten disetujui dan dipublikasikan",
		dto.ToContentOwnerDTO(*updated,
			helperOSS.ResolveSignedURL(ctrl.OSS, updated.ContentFileURL, ttl),
			resolveOptional(ctrl.OSS, updated.ContentCoverImageURL, ttl)))
}

// =======================
// ❌ Reject (wajib sertakan catatan utk kontributor)
// =======================
func (ctrl *ContentAdminController) RejectContent(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.RejectContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updated, err := ctrl.Service.Reject(contentID, body.AdminNotes)
	if err != nil {
		return mapContentServiceError(c, err, "Failed to reject content")
	}

	ttl := signedTTL()
	return helper.JsonUpdated(c, "Konten ditolak",
		dto.ToContentOwnerDTO(*updated,
			helperOSS.ResolveSignedURL(ctrl.OSS, updated.ContentFileURL, ttl),
			resolveOptional(ctrl.OSS, updated.ContentCoverImageURL, ttl)))
}

// =======================
// 🔄 Kembalikan ke antrian (admin, status apa pun)
// =======================
func (ctrl *ContentAdminController) SetPendingContent(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	updated, err := ctrl.Service.SetPending(contentID)
	if err != nil {
		return mapContentServiceError(c, err, "Failed to requeue content")
	}

	ttl := signedTTL()
	return helper.JsonUpdated(c, "Konten dikembalikan ke antrian review",
		dto.ToContentOwnerDTO(*updated,
			helperOSS.ResolveSignedURL(ctrl.OSS, updated.ContentFileURL, ttl),
			resolveOptional(ctrl.OSS, updated.ContentCoverImageURL, ttl)))
}

// =======================
// 🗑️ Delete (admin, status apa pun)
// =======================
func (ctrl *ContentAdminController) DeleteContent(c *fiber.Ctx) error {
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	deleted, err := ctrl.Service.AdminDelete(contentID)
	if err != nil {
		return mapContentServiceError(c, err, "Failed to delete content")
	}

	cleanupContentObjects(c, ctrl.OSS, deleted)

	return helper.JsonDeleted(c, "Konten dihapus", fiber.Map{"content_id": contentID})
}

// =======================
// 📊 Contributor Stats (admin)
// =======================
// Agregat per kontributor: total karya, rincian per status,
// tanggal publikasi terakhir.
func (ctrl *ContentAdminController) GetContributorStats(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	type row struct {
		ContributorID   uuid.UUID  `json:"contributor_id"`
		ContributorName string     `json:"contributor_name"`
		Total           int64      `json:"total"`
		Pending         int64      `json:"pending"`
		Approved        int64      `json:"approved"`
		Rejected        int64      `json:"rejected"`
		LastPublishedAt *time.Time `json:"last_published_at"`
	}

	var total int64
	if err := ctrl.DB.Model(&model.ContentModel{}).
		Distinct("content_contributor_id").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contributors")
	}

	var rows []row
	if err := ctrl.DB.Table("contents").
		Select(`contents.content_contributor_id AS contributor_id,
			COALESCE(users.user_name, '') AS contributor_name,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE content_status = 'pending')  AS pending,
			COUNT(*) FILTER (WHERE content_status = 'approved') AS approved,
			COUNT(*) FILTER (WHERE content_status = 'rejected') AS rejected,
			MAX(content_published_at) AS last_published_at`).
		Joins("LEFT JOIN users ON users.id = contents.content_contributor_id").
		Group("contents.content_contributor_id, users.user_name").
		Order("total DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] contributor stats:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute contributor stats")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
