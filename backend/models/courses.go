package models

import (
	"encoding/json"
	"time"
)

type Course struct {
	ID            string `gorm:"primaryKey"`
	Title         string
	Description   string
	SequenceOrder int
	Lessons       []Lesson `gorm:"foreignKey:CourseID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Lesson struct {
	ID            string `gorm:"primaryKey"`
	CourseID      string `gorm:"index"`
	Title         string
	VideoURL      string
	Question      string
	Choices       string // JSON array of answer choices
	CorrectIndex  int
	SequenceOrder int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ChoiceList decodes the Choices column.
func (l *Lesson) ChoiceList() []string {
	var choices []string
	if l.Choices != "" {
		json.Unmarshal([]byte(l.Choices), &choices)
	}
	return choices
}

func (l *Lesson) SetChoiceList(choices []string) {
	data, _ := json.Marshal(choices)
	l.Choices = string(data)
}

// Sign is a dictionary entry mapping a word to its sign video.
type Sign struct {
	ID        string `gorm:"primaryKey"`
	Word      string `gorm:"index"`
	VideoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
