package controller

import (
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fikrislam_backend/internals/configs"
	"fikrislam_backend/internals/features/analytics/events/dto"
	"fikrislam_backend/internals/features/analytics/events/model"
	contentModel "fikrislam_backend/internals/features/content/contents/model"
	helper "fikrislam_backend/internals/helpers"
)

var validateAnalytics = validator.New()

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// =======================
// ➕ Track Event (insert-and-forget)
// =======================
// Pencatatan tidak boleh mengganggu pengalaman baca/putar: kegagalan
// insert hanya dicatat di log, caller tetap menerima 202.
func (ctrl *AnalyticsController) TrackEvent(c *fiber.Ctx) error {
	var body dto.TrackEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAnalytics.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	event := model.ContentAnalyticsModel{
		AnalyticsContentID: body.ContentID,
		AnalyticsAction:    body.Action,
	}
	// user opsional: endpoint ini juga dipakai pengunjung anonim. Rute
	// publik tidak lewat AuthMiddleware, jadi token Bearer (kalau ada)
	// diparse best-effort di sini — token rusak berarti event anonim.
	if userID, ok := userIDFromBearer(c.Get("Authorization")); ok {
		event.AnalyticsUserID = &userID
	}
	if len(body.Metadata) > 0 {
		if raw, err := sonic.Marshal(body.Metadata); err == nil {
			event.AnalyticsMetadata = datatypes.JSON(raw)
		}
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		log.Println("[WARN] gagal mencatat event analytics:", err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status":  "accepted",
		"message": "Event dicatat",
	})
}

// =======================
// 📊 Summary (admin)
// =======================
// ?range=7d|30d|90d|all (default 30d)
func (ctrl *AnalyticsController) GetSummary(c *fiber.Ctx) error {
	rng := c.Query("range", "30d")
	since, ok := rangeStart(rng, time.Now())
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "range harus 7d, 30d, 90d, atau all")
	}

	events := ctrl.DB.Model(&model.ContentAnalyticsModel{})
	if !since.IsZero() {
		events = events.Where("analytics_created_at >= ?", since)
	}

	summary := dto.AnalyticsSummaryDTO{
		Range:           rng,
		PublishedByType: map[string]int64{},
	}

	type actionRow struct {
		Action string
		Count  int64
	}
	var actionRows []actionRow
	if err := events.Session(&gorm.Session{}).
		Select("analytics_action AS action, COUNT(*) AS count").
		Group("analytics_action").
		Scan(&actionRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate actions")
	}
	for _, r := range actionRows {
		summary.Actions.Total += r.Count
		switch r.Action {
		case model.ActionView:
			summary.Actions.Views = r.Count
		case model.ActionDownload:
			summary.Actions.Downloads = r.Count
		case model.ActionPlay:
			summary.Actions.Plays = r.Count
		}
	}

	type typeRow struct {
		Type  string
		Count int64
	}
	var typeRows []typeRow
	if err := ctrl.DB.Model(&contentModel.ContentModel{}).
		Select("content_type AS type, COUNT(*) AS count").
		Where("content_status = ?", contentModel.StatusApproved).
		Group("content_type").
		Scan(&typeRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate content")
	}
	for _, r := range typeRows {
		summary.PublishedByType[r.Type] = r.Count
	}

	if err := ctrl.DB.Model(&contentModel.ContentModel{}).
		Distinct("content_contributor_id").
		Count(&summary.ContributorCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contributors")
	}

	if err := events.Session(&gorm.Session{}).
		Select("DATE_TRUNC('day', analytics_created_at) AS day, COUNT(*) AS count").
		Group("day").
		Order("day ASC").
		Scan(&summary.DailyActivity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to bucket daily activity")
	}

	topQuery := ctrl.DB.Table("content_analytics").
		Select(`content_analytics.analytics_content_id AS content_id,
			contents.content_title, contents.content_type,
			COUNT(*) AS views`).
		Joins("JOIN contents ON contents.content_id = content_analytics.analytics_content_id").
		Where("content_analytics.analytics_action = ?", model.ActionView)
	if !since.IsZero() {
		topQuery = topQuery.Where("content_analytics.analytics_created_at >= ?", since)
	}
	if err := topQuery.
		Group("content_analytics.analytics_content_id, contents.content_title, contents.content_type").
		Order("views DESC").
		Limit(10).
		Scan(&summary.TopContent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rank top content")
	}

	return helper.JsonOK(c, "ok", summary)
}

// userIDFromBearer: atribusi user best-effort dari header Authorization.
// Token hilang/rusak/kadaluarsa tidak pernah menggagalkan pencatatan.
func userIDFromBearer(authHeader string) (uuid.UUID, bool) {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return uuid.Nil, false
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return uuid.Nil, false
	}

	raw, _ := claims["id"].(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

// rangeStart: zero time = tanpa batas bawah
func rangeStart(rng string, now time.Time) (time.Time, bool) {
	switch rng {
	case "7d":
		return now.AddDate(0, 0, -7), true
	case "30d":
		return now.AddDate(0, 0, -30), true
	case "90d":
		return now.AddDate(0, 0, -90), true
	case "all":
		return time.Time{}, true
	default:
		return time.Time{}, false
	}
}
