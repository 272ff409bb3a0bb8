package models

import (
	"encoding/json"
	"time"
)

// UserProgress is the per-user aggregate row. It is created lazily on the
// first recorded attempt and never deleted; XP only ever grows.
type UserProgress struct {
	UserID           string `gorm:"primaryKey"`
	XP               int    `gorm:"default:0"`
	CompletedLessons string // JSON array of lesson IDs

	// Snapshot of the most recent lesson attempt, null until the first one.
	LastLessonID   *string
	LastUserAnswer *int
	LastWasCorrect *bool
	LastXPEarned   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompletedList decodes the CompletedLessons column.
func (p *UserProgress) CompletedList() []string {
	var ids []string
	if p.CompletedLessons != "" {
		json.Unmarshal([]byte(p.CompletedLessons), &ids)
	}
	return ids
}

func (p *UserProgress) SetCompletedList(ids []string) {
	data, _ := json.Marshal(ids)
	p.CompletedLessons = string(data)
}

// HasCompleted reports whether the lesson is already in the completed list.
func (p *UserProgress) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedList() {
		if id == lessonID {
			return true
		}
	}
	return false
}
