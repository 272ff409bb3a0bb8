package controllers

import (
	"errors"
	"time"

	"csignes/backend/middleware"
	"csignes/backend/services"
	"csignes/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ActivityController struct {
	Activity *services.ActivityService
}

func NewActivityController(activity *services.ActivityService) *ActivityController {
	return &ActivityController{Activity: activity}
}

// GetWeekHistory godoc
// @Summary Get weekly activity history
// @Description Returns per-day activity flags, streak and global progress for an inclusive date range
// @Tags activity
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} services.WeekHistory
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /history/week [get]
func (ac *ActivityController) GetWeekHistory(c *fiber.Ctx) error {
	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.UTC)
	if err != nil {
		return utils.BadRequest(c, "Invalid from date")
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.UTC)
	if err != nil {
		return utils.BadRequest(c, "Invalid to date")
	}

	history, err := ac.Activity.WeekHistory(c.Context(), middleware.UserID(c), from, to)
	if errors.Is(err, services.ErrInvalidInput) {
		return utils.BadRequest(c, "from must not be after to")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not build history")
	}

	return c.JSON(history)
}

// GetActivityStats godoc
// @Summary Get activity stats
// @Description Returns the dashboard summary: XP, streak, global progress
// @Tags activity
// @Produce json
// @Success 200 {object} services.ActivityStats
// @Security ApiKeyAuth
// @Router /activity/stats [get]
func (ac *ActivityController) GetActivityStats(c *fiber.Ctx) error {
	stats, err := ac.Activity.Stats(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not build stats")
	}

	return c.JSON(stats)
}

// GetGameStats godoc
// @Summary Get game stats
// @Description Returns the user's mini-game history and badge counts
// @Tags activity
// @Produce json
// @Success 200 {object} services.GameStats
// @Security ApiKeyAuth
// @Router /games/stats [get]
func (ac *ActivityController) GetGameStats(c *fiber.Ctx) error {
	stats, err := ac.Activity.GameStats(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.InternalServerError(c, "Could not build game stats")
	}

	return c.JSON(stats)
}
