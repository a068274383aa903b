package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	"fikrislam_backend/internals/features/content/contents/dto"
	"fikrislam_backend/internals/features/content/contents/model"
	"fikrislam_backend/internals/features/content/contents/service"
	helper "fikrislam_backend/internals/helpers"
	helperOSS "fikrislam_backend/internals/helpers/oss"
)

var validateContent = validator.New()

type ContentContributorController struct {
	DB      *gorm.DB
	Service *service.ContentService
	OSS     *helperOSS.OSSService
}

func NewContentContributorController(db *gorm.DB, oss *helperOSS.OSSService) *ContentContributorController {
	return &ContentContributorController{
		DB:      db,
		Service: service.NewContentService(service.NewGormContentRepo(db)),
		OSS:     oss,
	}
}

// =======================
// ⬆️ Upload Content (contributor)
// =======================
// Validasi file (tipe + ukuran) dilakukan SEBELUM menyentuh storage;
// input tidak valid tidak memicu satu pun panggilan remote.
func (ctrl *ContentContributorController) UploadContent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.ValidContentType(body.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe konten harus book, audio, atau video")
	}
	if body.Language != "" && !constants.ValidContentLanguage(body.Language) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bahasa tidak didukung")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File konten wajib diunggah")
	}
	if !constants.AllowedFileExt(body.Type, fileHeader.Filename) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType,
			fmt.Sprintf("Format file tidak sesuai tipe %s (pakai %s)", body.Type, constants.AllowedExtList(body.Type)))
	}
	if fileHeader.Size > constants.MaxContentFileSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 500MB")
	}

	coverHeader, _ := c.FormFile("cover_image")
	if coverHeader != nil {
		if !constants.AllowedCoverExt(coverHeader.Filename) {
			return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Cover harus jpg/png/webp")
		}
		if coverHeader.Size > constants.MaxCoverImageSize {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran cover maksimal 10MB")
		}
	}

	if ctrl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}

	ctx := c.UserContext()
	dir := fmt.Sprintf("contributors/%s/%s", userID, body.Type)
	fileKey, _, err := ctrl.OSS.UploadContentFile(ctx, dir, fileHeader)
	if err != nil {
		log.Println("[ERROR] upload file:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload file ke storage")
	}

	var coverKey *string
	if coverHeader != nil {
		coverDir := fmt.Sprintf("contributors/%s/covers", userID)
		key, err := ctrl.OSS.UploadCoverAsWebP(ctx, coverDir, coverHeader)
		if err != nil {
			log.Println("[ERROR] upload cover:", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal upload cover ke storage")
		}
		coverKey = &key
	}

	content := model.ContentModel{
		ContentTitle:         body.Title,
		ContentDescription:   optString(body.Description),
		ContentAuthor:        optString(body.Author),
		ContentType:          body.Type,
		ContentLanguage:      optString(body.Language),
		ContentTags:          pq.StringArray(dto.NormalizeTags(body.Tags)),
		ContentFileURL:       fileKey,
		ContentCoverImageURL: coverKey,
		ContentContributorID: userID,
	}
	if err := ctrl.Service.Submit(&content); err != nil {
		log.Println("[ERROR] create content:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan konten")
	}

	return helper.JsonCreated(c, "Konten terkirim dan menunggu review admin", ctrl.ownerDTO(content))
}

// =======================
// 📄 My Content (semua status milik sendiri)
// =======================
func (ctrl *ContentContributorController) GetMyContent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 25, 100)
	q := ctrl.DB.Model(&model.ContentModel{}).Where("content_contributor_id = ?", userID)
	if status := c.Query("status"); status != "" {
		if !model.ValidStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("content_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count content")
	}

	var items []model.ContentModel
	if err := q.Order("content_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve content")
	}

	resp := make([]dto.ContentOwnerDTO, 0, len(items))
	for _, m := range items {
		resp = append(resp, ctrl.ownerDTO(m))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ✏️ Edit My Content (pending/rejected; rejected ⇒ resubmit)
// =======================
func (ctrl *ContentContributorController) UpdateMyContent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var body dto.UpdateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.Language != "" && !constants.ValidContentLanguage(body.Language) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bahasa tidak didukung")
	}

	updated, err := ctrl.Service.EditMeta(contentID, userID,
		body.Title, optString(body.Description), optString(body.Author), optString(body.Language),
		dto.NormalizeTags(body.Tags))
	if err != nil {
		return mapContentServiceError(c, err, "Failed to update content")
	}

	return helper.JsonUpdated(c, "Konten diperbarui", ctrl.ownerDTO(*updated))
}

// =======================
// 🗑️ Delete My Content (pending/rejected saja)
// =======================
func (ctrl *ContentContributorController) DeleteMyContent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	contentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	deleted, err := ctrl.Service.DeleteOwn(contentID, userID)
	if err != nil {
		return mapContentServiceError(c, err, "Failed to delete content")
	}

	cleanupContentObjects(c, ctrl.OSS, deleted)

	return helper.JsonDeleted(c, "Konten dihapus", fiber.Map{"content_id": contentID})
}

// =======================
// 📊 My Stats (per status & tipe)
// =======================
func (ctrl *ContentContributorController) GetMyStats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	type row struct {
		Status string
		Type   string
		Count  int64
	}
	var rows []row
	if err := ctrl.DB.Model(&model.ContentModel{}).
		Select("content_status AS status, content_type AS type, COUNT(*) AS count").
		Where("content_contributor_id = ?", userID).
		Group("content_status, content_type").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	byStatus := fiber.Map{"pending": int64(0), "approved": int64(0), "rejected": int64(0)}
	byType := fiber.Map{"book": int64(0), "audio": int64(0), "video": int64(0)}
	var total int64
	for _, r := range rows {
		total += r.Count
		if v, ok := byStatus[r.Status].(int64); ok {
			byStatus[r.Status] = v + r.Count
		}
		if v, ok := byType[r.Type].(int64); ok {
			byType[r.Type] = v + r.Count
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"total":     total,
		"by_status": byStatus,
		"by_type":   byType,
	})
}

/* ==========================
   utils
========================== */

func (ctrl *ContentContributorController) ownerDTO(m model.ContentModel) dto.ContentOwnerDTO {
	ttl := signedTTL()
	return dto.ToContentOwnerDTO(m,
		helperOSS.ResolveSignedURL(ctrl.OSS, m.ContentFileURL, ttl),
		resolveOptional(ctrl.OSS, m.ContentCoverImageURL, ttl))
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mapContentServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	case errors.Is(err, service.ErrNotOwner):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan pemilik konten ini")
	case errors.Is(err, service.ErrContentLocked):
		return helper.JsonError(c, fiber.StatusForbidden, "Konten yang sudah dipublikasikan tidak bisa diubah/dihapus kontributor")
	default:
		log.Println("[ERROR]", fallback+":", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
