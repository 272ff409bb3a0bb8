package store

import (
	"context"
	"errors"
	"time"

	"csignes/backend/models"
)

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("store: duplicate row")

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence boundary the services depend on. Implementations
// must make CreateLessonAttempt and CreateGameAttempt atomic: either the
// attempt row and the progress update both land, or neither does.
type Store interface {
	Courses(ctx context.Context) ([]models.Course, error)
	Course(ctx context.Context, id string) (*models.Course, error)
	Lesson(ctx context.Context, id string) (*models.Lesson, error)
	LessonCount(ctx context.Context) (int64, error)
	Signs(ctx context.Context, query string) ([]models.Sign, error)

	Progress(ctx context.Context, userID string) (*models.UserProgress, error)
	LessonAttempt(ctx context.Context, userID, lessonID string) (*models.LessonAttempt, error)
	LessonAttemptsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.LessonAttempt, error)
	GameAttemptsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.GameAttempt, error)
	GameAttempts(ctx context.Context, userID string) ([]models.GameAttempt, error)

	// AttemptTimes returns the creation timestamps of every attempt (lesson
	// and game) the user has ever made.
	AttemptTimes(ctx context.Context, userID string) ([]time.Time, error)

	// CreateLessonAttempt inserts the attempt and applies mutate to the
	// user's progress row (created if absent) in one transaction. Returns
	// ErrDuplicate if the (user, lesson) pair already has an attempt.
	CreateLessonAttempt(ctx context.Context, attempt *models.LessonAttempt, mutate func(*models.UserProgress)) (*models.UserProgress, error)

	// CreateGameAttempt does the same for a game attempt. Returns
	// ErrDuplicate if the (user, game) pair was already played.
	CreateGameAttempt(ctx context.Context, attempt *models.GameAttempt, mutate func(*models.UserProgress)) (*models.UserProgress, error)
}
