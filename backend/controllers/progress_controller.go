package controllers

import (
	"errors"

	"csignes/backend/middleware"
	"csignes/backend/services"
	"csignes/backend/store"
	"csignes/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store    store.Store
	Attempts *services.AttemptService
}

func NewProgressController(s store.Store, attempts *services.AttemptService) *ProgressController {
	return &ProgressController{Store: s, Attempts: attempts}
}

// GetMyProgress godoc
// @Summary Get own progress
// @Description Returns the authenticated user's XP and completed lessons
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/me [get]
func (pc *ProgressController) GetMyProgress(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	progress, err := pc.Store.Progress(c.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "No progress yet")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load progress")
	}

	return c.JSON(progressJSON(progress))
}

// GetLessonAttempt godoc
// @Summary Get own attempt for a lesson
// @Description Returns the user's recorded attempt for one lesson, if any
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/me/lesson/{lessonId}/attempt [get]
func (pc *ProgressController) GetLessonAttempt(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	attempt, err := pc.Attempts.LessonAttemptFor(c.Context(), userID, c.Params("lessonId"))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "No attempt for this lesson")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load attempt")
	}

	return c.JSON(attemptJSON(attempt))
}
