package controllers

import (
	"csignes/backend/store"
	"csignes/backend/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Store store.Store
}

func NewCoursesController(s store.Store) *CoursesController {
	return &CoursesController{Store: s}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses, err := cc.Store.Courses(c.Context())
	if err != nil {
		return utils.InternalServerError(c, "Could not load courses")
	}

	result := []fiber.Map{}
	for _, course := range courses {
		lessonIDs := []string{}
		for _, lesson := range course.Lessons {
			lessonIDs = append(lessonIDs, lesson.ID)
		}

		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"lessonIds":   lessonIDs,
		})
	}

	return c.JSON(result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, err := cc.Store.Course(c.Context(), c.Params("courseId"))
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Course not found")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not load course")
	}

	lessonIDs := []string{}
	for _, lesson := range course.Lessons {
		lessonIDs = append(lessonIDs, lesson.ID)
	}

	return c.JSON(fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"lessonIds":   lessonIDs,
	})
}
