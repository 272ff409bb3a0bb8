package controllers

import (
	"csignes/backend/store"
	"csignes/backend/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type LessonsController struct {
	Store store.Store
}

func NewLessonsController(s store.Store) *LessonsController {
	return &LessonsController{Store: s}
}

func (lc *LessonsController) GetLesson(c *fiber.Ctx) error {
	lesson, err := lc.Store.Lesson(c.Context(), c.Params("lessonId"))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Lesson not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load lesson")
	}

	// A lesson is served as an ordered list of steps: the sign video first,
	// then the multiple-choice question.
	steps := []fiber.Map{
		{
			"type":     "video",
			"videoUrl": lesson.VideoURL,
		},
		{
			"type":         "qcm",
			"question":     lesson.Question,
			"choices":      lesson.ChoiceList(),
			"correctIndex": lesson.CorrectIndex,
		},
	}

	return c.JSON(fiber.Map{
		"id":    lesson.ID,
		"title": lesson.Title,
		"steps": steps,
	})
}
