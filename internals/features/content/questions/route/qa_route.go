// file: internals/features/content/questions/route/qa_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fikrislam_backend/internals/constants"
	controller "fikrislam_backend/internals/features/content/questions/controller"
	authMiddleware "fikrislam_backend/internals/middlewares/auth"
)

// QAPublicRoutes: baca tanya-jawab (base: /api/public)
func QAPublicRoutes(public fiber.Router, db *gorm.DB) {
	qaController := controller.NewQAController(db)

	questions := public.Group("/questions")
	questions.Get("/", qaController.GetQuestions)
	questions.Get("/:id", qaController.GetQuestionByID)
}

// QAUserRoutes: bertanya & kelola pertanyaan sendiri (base: /api/u)
func QAUserRoutes(user fiber.Router, db *gorm.DB) {
	qaController := controller.NewQAController(db)

	questions := user.Group("/questions")
	questions.Post("/", qaController.CreateQuestion)
	questions.Get("/mine", qaController.GetMyQuestions)
	questions.Put("/:id", qaController.UpdateMyQuestion)
	questions.Delete("/:id", qaController.DeleteMyQuestion)

	// menjawab: kontributor & admin saja
	questions.Post("/:id/answers",
		authMiddleware.OnlyRoles(constants.RoleErrorContributor("menjawab pertanyaan"), constants.ContributorAndAbove...),
		qaController.CreateAnswer)
}

// QAAdminRoutes: moderasi jawaban (base: /api/a)
func QAAdminRoutes(admin fiber.Router, db *gorm.DB) {
	qaController := controller.NewQAController(db)

	answers := admin.Group("/answers")
	answers.Get("/pending", qaController.GetPendingAnswers)
	answers.Put("/:id/approve", qaController.ApproveAnswer)
	answers.Put("/:id/reject", qaController.RejectAnswer)
}
