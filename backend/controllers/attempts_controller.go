package controllers

import (
	"errors"

	"csignes/backend/middleware"
	"csignes/backend/models"
	"csignes/backend/services"
	"csignes/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AttemptsController struct {
	Attempts *services.AttemptService
}

func NewAttemptsController(attempts *services.AttemptService) *AttemptsController {
	return &AttemptsController{Attempts: attempts}
}

// CreateLessonAttempt godoc
// @Summary Record a lesson attempt
// @Description Records the user's single answer for a lesson and awards XP
// @Tags attempts
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "lessonId and selectedIndex"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /attempts [post]
func (ac *AttemptsController) CreateLessonAttempt(c *fiber.Ctx) error {
	type AttemptInput struct {
		LessonID      string `json:"lessonId"`
		SelectedIndex *int   `json:"selectedIndex"`
	}

	var input AttemptInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.LessonID == "" || input.SelectedIndex == nil {
		return utils.BadRequest(c, "lessonId and selectedIndex are required")
	}

	userID := middleware.UserID(c)
	attempt, progress, err := ac.Attempts.RecordLessonAttempt(c.Context(), userID, input.LessonID, *input.SelectedIndex)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrLessonNotFound):
		return utils.NotFound(c, "Lesson not found")
	case errors.Is(err, services.ErrAlreadyAttempted):
		return utils.Conflict(c, "Lesson already attempted")
	case err != nil:
		return utils.InternalServerError(c, "Could not record attempt")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt":  attemptJSON(attempt),
		"progress": progressJSON(progress),
	})
}

// CreateGameAttempt godoc
// @Summary Record a game attempt
// @Description Records the user's single play of a mini-game and awards XP
// @Tags attempts
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "gameId and score"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /games/attempts [post]
func (ac *AttemptsController) CreateGameAttempt(c *fiber.Ctx) error {
	type GameAttemptInput struct {
		GameID string `json:"gameId"`
		Score  *int   `json:"score"`
	}

	var input GameAttemptInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.GameID == "" || input.Score == nil {
		return utils.BadRequest(c, "gameId and score are required")
	}

	userID := middleware.UserID(c)
	attempt, progress, err := ac.Attempts.RecordGameAttempt(c.Context(), userID, input.GameID, *input.Score)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAlreadyPlayed):
		return utils.Conflict(c, "Game already played")
	case err != nil:
		return utils.InternalServerError(c, "Could not record game attempt")
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"gameId":    attempt.GameID,
		"score":     attempt.Score,
		"xpAwarded": attempt.XPAwarded,
		"totalXp":   progress.XP,
	})
}

func attemptJSON(attempt *models.LessonAttempt) fiber.Map {
	return fiber.Map{
		"lessonId":      attempt.LessonID,
		"selectedIndex": attempt.SelectedIndex,
		"isCorrect":     attempt.IsCorrect,
		"xpAwarded":     attempt.XPAwarded,
		"createdAt":     attempt.CreatedAt,
	}
}

func progressJSON(progress *models.UserProgress) fiber.Map {
	return fiber.Map{
		"userId":           progress.UserID,
		"xp":               progress.XP,
		"completedLessons": progress.CompletedList(),
		"lastLessonId":     progress.LastLessonID,
		"lastUserAnswer":   progress.LastUserAnswer,
		"lastWasCorrect":   progress.LastWasCorrect,
		"lastXpEarned":     progress.LastXPEarned,
	}
}
