package models

import "time"

// LessonAttempt records a single answer submission for a lesson. The
// composite unique index is what makes attempts single-shot: a second
// submission for the same (user, lesson) pair violates it and is rejected.
type LessonAttempt struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"uniqueIndex:idx_lesson_attempt_user_lesson"`
	LessonID      string `gorm:"uniqueIndex:idx_lesson_attempt_user_lesson"`
	SelectedIndex int
	IsCorrect     bool
	XPAwarded     int
	CreatedAt     time.Time
}

// GameAttempt records a single play of a mini-game. Same single-shot rule as
// lessons, enforced with a unique index on (user_id, game_id).
type GameAttempt struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_game_attempt_user_game"`
	GameID    string `gorm:"uniqueIndex:idx_game_attempt_user_game"`
	Score     int
	XPAwarded int
	CreatedAt time.Time
}
