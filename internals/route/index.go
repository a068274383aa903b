// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	helperOSS "fikrislam_backend/internals/helpers/oss"
	authMiddleware "fikrislam_backend/internals/middlewares/auth"
	routeDetails "fikrislam_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	// OSS dibuat sekali dan dibagikan ke semua controller konten.
	// Gagal init ≠ fatal: endpoint tetap jalan, signed URL kosong,
	// upload menolak dgn 503.
	oss, err := helperOSS.NewOSSServiceFromEnv("")
	if err != nil {
		log.Println("[WARN] OSS tidak terkonfigurasi:", err)
		oss = nil
	}

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa token
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (semua user login)
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// CONTRIBUTOR (kontributor & admin)
	log.Println("[INFO] Setting up CONTRIBUTOR group...")
	contributor := app.Group("/api/c",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorContributor("kontribusi konten"),
			constants.ContributorAndAbove...,
		),
	)

	// ADMIN
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("administrasi"),
			constants.AdminOnly...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserUserRoutes(user, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Content routes...")
	routeDetails.ContentPublicRoutes(public, db, oss)
	routeDetails.ContentContributorRoutes(contributor, db, oss)
	routeDetails.ContentAdminRoutes(admin, db, oss)

	log.Println("[INFO] Mounting Q&A routes...")
	routeDetails.QAPublicRoutes(public, db)
	routeDetails.QAUserRoutes(user, db)
	routeDetails.QAAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Engagement routes...")
	routeDetails.EngagementUserRoutes(user, db, oss)

	log.Println("[INFO] Mounting Analytics routes...")
	routeDetails.AnalyticsPublicRoutes(public, db)
	routeDetails.AnalyticsAdminRoutes(admin, db)
}
