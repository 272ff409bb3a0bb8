package routes

import (
	"csignes/backend/config"
	"csignes/backend/controllers"
	"csignes/backend/middleware"
	"csignes/backend/services"
	"csignes/backend/store"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	dataStore := store.NewGormStore(db)
	attemptService := services.NewAttemptService(dataStore)
	activityService := services.NewActivityService(dataStore, cfg.TotalLessons, cfg.DailyGameTarget)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/docs/*", fiberSwagger.WrapHandler)

	authMiddleware := middleware.AuthMiddleware(cfg)
	api := app.Group("/api", authMiddleware)

	// Catalogue routes
	coursesController := controllers.NewCoursesController(dataStore)
	api.Get("/courses", coursesController.GetCourses)
	api.Get("/courses/:courseId", coursesController.GetCourseDetails)

	lessonsController := controllers.NewLessonsController(dataStore)
	api.Get("/lessons/:lessonId", lessonsController.GetLesson)

	dictionaryController := controllers.NewDictionaryController(dataStore)
	api.Get("/dictionary", dictionaryController.GetSigns)

	// Attempt routes
	attemptsController := controllers.NewAttemptsController(attemptService)
	api.Post("/attempts", attemptsController.CreateLessonAttempt)
	api.Post("/games/attempts", attemptsController.CreateGameAttempt)

	// Progress routes
	progressController := controllers.NewProgressController(dataStore, attemptService)
	api.Get("/progress/me", progressController.GetMyProgress)
	api.Get("/progress/me/lesson/:lessonId/attempt", progressController.GetLessonAttempt)

	// Activity routes
	activityController := controllers.NewActivityController(activityService)
	api.Get("/history/week", activityController.GetWeekHistory)
	api.Get("/activity/stats", activityController.GetActivityStats)
	api.Get("/games/stats", activityController.GetGameStats)
}
