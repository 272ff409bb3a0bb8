package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"csignes/backend/models"
	"csignes/backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLessonAttemptAt(t *testing.T, s *store.GormStore, userID, lessonID string, at time.Time) {
	t.Helper()
	require.NoError(t, s.DB.Create(&models.LessonAttempt{
		ID:        fmt.Sprintf("%s-%s", userID, lessonID),
		UserID:    userID,
		LessonID:  lessonID,
		IsCorrect: true,
		XPAwarded: 10,
		CreatedAt: at,
	}).Error)
}

func seedGameAttemptAt(t *testing.T, s *store.GormStore, userID, gameID string, score int, at time.Time) {
	t.Helper()
	require.NoError(t, s.DB.Create(&models.GameAttempt{
		ID:        fmt.Sprintf("%s-%s", userID, gameID),
		UserID:    userID,
		GameID:    gameID,
		Score:     score,
		XPAwarded: score / 5,
		CreatedAt: at,
	}).Error)
}

func TestWeekHistoryBucketsByUTCDay(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)

	day := func(d string) time.Time {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.UTC)
		require.NoError(t, err)
		return parsed
	}

	seedLessonAttemptAt(t, s, "user-1", "lesson-1", day("2024-05-01").Add(9*time.Hour))
	seedGameAttemptAt(t, s, "user-1", "game-1", 80, day("2024-05-03").Add(23*time.Hour))

	history, err := svc.WeekHistory(context.Background(), "user-1", day("2024-05-01"), day("2024-05-07"))
	require.NoError(t, err)

	require.Len(t, history.Days, 7)
	assert.Equal(t, 2, history.ActiveDaysCount)
	assert.True(t, history.Days[0].DidActivity)
	assert.False(t, history.Days[1].DidActivity)
	assert.True(t, history.Days[2].DidActivity)

	// 2024-05-01 was a Wednesday: labels run M J V S D L M.
	assert.Equal(t, "2024-05-01", history.Days[0].Date)
	assert.Equal(t, "M", history.Days[0].Label)
	assert.Equal(t, "J", history.Days[1].Label)
	assert.Equal(t, "L", history.Days[5].Label)

	// Only lesson attempts are echoed back in the raw list.
	require.Len(t, history.Attempts, 1)
	assert.Equal(t, "lesson-1", history.Attempts[0].LessonID)
}

func TestWeekHistoryRejectsInvertedRange(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)

	from := time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.WeekHistory(context.Background(), "user-1", from, to)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStreakCountsConsecutiveDaysUpToToday(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)
	now := time.Now().UTC()

	// Activity today, yesterday and the day before; nothing on day -3.
	seedLessonAttemptAt(t, s, "user-1", "lesson-1", now)
	seedLessonAttemptAt(t, s, "user-1", "lesson-2", now.AddDate(0, 0, -1))
	seedGameAttemptAt(t, s, "user-1", "game-1", 70, now.AddDate(0, 0, -2))

	streak, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestStreakIsZeroWithoutActivityToday(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)
	now := time.Now().UTC()

	// Yesterday only: a one-day gap resets the streak to zero.
	seedLessonAttemptAt(t, s, "user-1", "lesson-1", now.AddDate(0, 0, -1))

	streak, err := svc.Streak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestProgressPct(t *testing.T) {
	assert.Equal(t, 25, progressPct(3, 12))
	assert.Equal(t, 0, progressPct(0, 12))
	assert.Equal(t, 100, progressPct(12, 12))
	// Capped at 100 even if the completed list outgrows the catalogue.
	assert.Equal(t, 100, progressPct(15, 12))
	assert.Equal(t, 0, progressPct(3, 0))
	assert.Equal(t, 8, progressPct(1, 12))
}

func TestStatsForFreshUser(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)

	stats, err := svc.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.XP)
	assert.Equal(t, 0, stats.StreakDays)
	assert.False(t, stats.DidActivityToday)
	assert.False(t, stats.FirstActivityUnlocked)
	assert.Equal(t, 0, stats.GlobalProgressPct)
	// Empty lesson table falls back to the configured catalogue size.
	assert.Equal(t, 12, stats.TotalLessons)
}

func TestStatsAfterActivity(t *testing.T) {
	s := newTestStore(t)
	seedLesson(t, s, "lesson-1", 0)
	svc := NewActivityService(s, 12, 5)

	_, _, err := NewAttemptService(s).RecordLessonAttempt(context.Background(), "user-1", "lesson-1", 0)
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 10, stats.XP)
	assert.Equal(t, 1, stats.StreakDays)
	assert.True(t, stats.DidActivityToday)
	assert.True(t, stats.FirstActivityUnlocked)
	assert.Equal(t, 1, stats.CompletedLessonsCount)
	// One lesson seeded, one completed.
	assert.Equal(t, 1, stats.TotalLessons)
	assert.Equal(t, 100, stats.GlobalProgressPct)
}

func TestGameStats(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)
	now := time.Now().UTC()

	seedGameAttemptAt(t, s, "user-1", "game-1", 90, now)
	seedGameAttemptAt(t, s, "user-1", "game-2", 50, now)
	seedGameAttemptAt(t, s, "user-1", "game-3", 85, now.AddDate(0, 0, -3))

	stats, err := svc.GameStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.GamesCompleted)
	assert.Equal(t, 75, stats.AvgScore)
	assert.Equal(t, 2, stats.BadgesWon)
	assert.Equal(t, 5, stats.DailyTarget)
	assert.Equal(t, 2, stats.DailyProgress)
	assert.ElementsMatch(t, []string{"game-1", "game-2", "game-3"}, stats.PlayedGameIDs)
	assert.Len(t, stats.Attempts, 3)
}

func TestGameStatsForFreshUser(t *testing.T) {
	s := newTestStore(t)
	svc := NewActivityService(s, 12, 5)

	stats, err := svc.GameStats(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.GamesCompleted)
	assert.Equal(t, 0, stats.AvgScore)
	assert.NotNil(t, stats.Attempts)
	assert.NotNil(t, stats.PlayedGameIDs)
}
