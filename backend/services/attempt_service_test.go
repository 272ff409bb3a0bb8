package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"csignes/backend/models"
	"csignes/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *store.GormStore {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Lesson{},
		&models.Sign{},
		&models.UserProgress{},
		&models.LessonAttempt{},
		&models.GameAttempt{},
	))

	return store.NewGormStore(db)
}

func seedLesson(t *testing.T, s *store.GormStore, id string, correctIndex int) {
	t.Helper()

	lesson := models.Lesson{
		ID:           id,
		CourseID:     "course-1",
		Title:        "Dire bonjour",
		Question:     "Que signifie ce signe ?",
		CorrectIndex: correctIndex,
	}
	lesson.SetChoiceList([]string{"Bonjour", "Merci", "Au revoir"})
	require.NoError(t, s.DB.Create(&lesson).Error)
}

func TestRecordLessonAttemptCorrect(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	svc := NewAttemptService(s)

	attempt, progress, err := svc.RecordLessonAttempt(context.Background(), "user-1", "lesson-1", 0)
	require.NoError(t, err)

	assert.True(t, attempt.IsCorrect)
	assert.Equal(t, 10, attempt.XPAwarded)
	assert.Equal(t, 10, progress.XP)
	assert.Equal(t, []string{"lesson-1"}, progress.CompletedList())

	require.NotNil(t, progress.LastLessonID)
	assert.Equal(t, "lesson-1", *progress.LastLessonID)
	require.NotNil(t, progress.LastWasCorrect)
	assert.True(t, *progress.LastWasCorrect)
	require.NotNil(t, progress.LastXPEarned)
	assert.Equal(t, 10, *progress.LastXPEarned)
}

func TestRecordLessonAttemptIncorrect(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	svc := NewAttemptService(s)

	attempt, progress, err := svc.RecordLessonAttempt(context.Background(), "user-1", "lesson-1", 1)
	require.NoError(t, err)

	// A wrong answer earns nothing but still consumes the attempt and marks
	// the lesson as completed.
	assert.False(t, attempt.IsCorrect)
	assert.Equal(t, 0, attempt.XPAwarded)
	assert.Equal(t, 0, progress.XP)
	assert.Equal(t, []string{"lesson-1"}, progress.CompletedList())
}

func TestRecordLessonAttemptConflictLeavesStateUntouched(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	svc := NewAttemptService(s)
	ctx := context.Background()

	_, first, err := svc.RecordLessonAttempt(ctx, "user-1", "lesson-1", 0)
	require.NoError(t, err)

	_, _, err = svc.RecordLessonAttempt(ctx, "user-1", "lesson-1", 2)
	assert.ErrorIs(t, err, ErrAlreadyAttempted)

	progress, err := s.Progress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.XP, progress.XP)
	assert.Equal(t, first.CompletedList(), progress.CompletedList())

	// The snapshot still describes the first attempt.
	require.NotNil(t, progress.LastUserAnswer)
	assert.Equal(t, 0, *progress.LastUserAnswer)
}

func TestRecordLessonAttemptUnknownLesson(t *testing.T) {
	s := newTestStore(t)
	svc := NewAttemptService(s)

	_, _, err := svc.RecordLessonAttempt(context.Background(), "user-1", "missing", 0)
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestRecordLessonAttemptValidation(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	svc := NewAttemptService(s)
	ctx := context.Background()

	_, _, err := svc.RecordLessonAttempt(ctx, "", "lesson-1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.RecordLessonAttempt(ctx, "user-1", "", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = svc.RecordLessonAttempt(ctx, "user-1", "lesson-1", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Three choices, so index 3 is out of range.
	_, _, err = svc.RecordLessonAttempt(ctx, "user-1", "lesson-1", 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordLessonAttemptKeepsCompletedListSet(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	seedLesson(t, s, "lesson-2", 1)
	svc := NewAttemptService(s)
	ctx := context.Background()

	_, _, err := svc.RecordLessonAttempt(ctx, "user-1", "lesson-1", 0)
	require.NoError(t, err)
	_, progress, err := svc.RecordLessonAttempt(ctx, "user-1", "lesson-2", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"lesson-1", "lesson-2"}, progress.CompletedList())
	assert.Equal(t, 20, progress.XP)
}

func TestGameXPSchedule(t *testing.T) {
	cases := []struct {
		score int
		xp    int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 1},
		{10, 2},
		{50, 10},
		{78, 16},
		{99, 20},
		{100, 20},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.xp, gameXP(tc.score), "score %d", tc.score)
	}
}

func TestRecordGameAttempt(t *testing.T) {
	s := newTestStore(t)
	svc := NewAttemptService(s)
	ctx := context.Background()

	attempt, progress, err := svc.RecordGameAttempt(ctx, "user-1", "game-1", 50)
	require.NoError(t, err)

	assert.Equal(t, 10, attempt.XPAwarded)
	assert.Equal(t, 10, progress.XP)
	// Games never count as completed lessons.
	assert.Empty(t, progress.CompletedList())
}

func TestRecordGameAttemptConflict(t *testing.T) {
	s := newTestStore(t)
	svc := NewAttemptService(s)
	ctx := context.Background()

	_, _, err := svc.RecordGameAttempt(ctx, "user-1", "game-1", 100)
	require.NoError(t, err)

	_, _, err = svc.RecordGameAttempt(ctx, "user-1", "game-1", 100)
	assert.ErrorIs(t, err, ErrAlreadyPlayed)

	progress, err := s.Progress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 20, progress.XP)
}

func TestRecordGameAttemptScoreBounds(t *testing.T) {
	s := newTestStore(t)
	svc := NewAttemptService(s)
	ctx := context.Background()

	for _, score := range []int{-1, 101, 1000} {
		_, _, err := svc.RecordGameAttempt(ctx, "user-1", fmt.Sprintf("game-%d", score), score)
		assert.ErrorIs(t, err, ErrInvalidInput, "score %d", score)
	}
}
