package utils

import (
	"csignes/backend/models"

	"gorm.io/gorm"
)

// SeedContent loads the demo catalogue when the course table is empty, so a
// fresh database serves something immediately. Safe to run on every start.
func SeedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	lesson := models.Lesson{
		ID:            "lesson-1",
		CourseID:      "course-1",
		Title:         "Dire bonjour",
		VideoURL:      "/videos/bonjour.mp4",
		Question:      "Que signifie ce signe ?",
		CorrectIndex:  0,
		SequenceOrder: 1,
	}
	lesson.SetChoiceList([]string{"Bonjour", "Merci", "Au revoir"})

	course := models.Course{
		ID:            "course-1",
		Title:         "Bases de la LSF",
		Description:   "Premiers signes du quotidien",
		SequenceOrder: 1,
		Lessons:       []models.Lesson{lesson},
	}

	if err := db.Create(&course).Error; err != nil {
		return err
	}

	sign := models.Sign{
		ID:       "sign-1",
		Word:     "Bonjour",
		VideoURL: "/videos/bonjour.mp4",
	}
	return db.Create(&sign).Error
}
