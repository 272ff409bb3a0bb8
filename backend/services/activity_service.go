package services

import (
	"context"
	"errors"
	"math"
	"time"

	"csignes/backend/store"
)

const dayKeyFormat = "2006-01-02"

// Day labels shown by the client, Monday first (L M M J V S D).
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "L",
	time.Tuesday:   "M",
	time.Wednesday: "M",
	time.Thursday:  "J",
	time.Friday:    "V",
	time.Saturday:  "S",
	time.Sunday:    "D",
}

// WeekDay is one calendar day in a history range.
type WeekDay struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	DidActivity bool   `json:"didActivity"`
	IsToday     bool   `json:"isToday"`
}

// LessonAttemptSummary is one lesson attempt as exposed to the client.
type LessonAttemptSummary struct {
	LessonID      string    `json:"lessonId"`
	SelectedIndex int       `json:"selectedIndex"`
	IsCorrect     bool      `json:"isCorrect"`
	XPAwarded     int       `json:"xpAwarded"`
	CreatedAt     time.Time `json:"createdAt"`
}

// WeekHistory is the full payload for the weekly history view.
type WeekHistory struct {
	Days              []WeekDay              `json:"days"`
	ActiveDaysCount   int                    `json:"activeDaysCount"`
	StreakDays        int                    `json:"streakDays"`
	GlobalProgressPct int                    `json:"globalProgressPct"`
	XP                int                    `json:"xp"`
	CompletedLessons  []string               `json:"completedLessons"`
	Attempts          []LessonAttemptSummary `json:"attempts"`
}

// ActivityStats is the dashboard summary payload.
type ActivityStats struct {
	XP                    int  `json:"xp"`
	StreakDays            int  `json:"streakDays"`
	DidActivityToday      bool `json:"didActivityToday"`
	CompletedLessonsCount int  `json:"completedLessonsCount"`
	TotalLessons          int  `json:"totalLessons"`
	GlobalProgressPct     int  `json:"globalProgressPct"`
	FirstActivityUnlocked bool `json:"firstActivityUnlocked"`
}

// GameAttemptSummary is one row of the game stats attempt list.
type GameAttemptSummary struct {
	GameID    string    `json:"gameId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameStats summarises a user's mini-game history.
type GameStats struct {
	Attempts       []GameAttemptSummary `json:"attempts"`
	GamesCompleted int                  `json:"gamesCompleted"`
	AvgScore       int                  `json:"avgScore"`
	BadgesWon      int                  `json:"badgesWon"`
	DailyTarget    int                  `json:"dailyTarget"`
	DailyProgress  int                  `json:"dailyProgress"`
	PlayedGameIDs  []string             `json:"playedGameIds"`
}

// A game counts as a badge when its score reaches this threshold.
const badgeScoreThreshold = 80

// ActivityService derives read-only summaries from recorded attempts. All
// day bucketing uses the UTC calendar date so the client and server never
// disagree on day boundaries.
type ActivityService struct {
	Store store.Store

	// Fallback catalogue size while the lesson table is empty.
	TotalLessons    int
	DailyGameTarget int
}

func NewActivityService(s store.Store, totalLessons, dailyGameTarget int) *ActivityService {
	return &ActivityService{Store: s, TotalLessons: totalLessons, DailyGameTarget: dailyGameTarget}
}

// WeekHistory builds one day record per calendar day in [from, to], flagging
// days on which the user made at least one lesson or game attempt.
func (s *ActivityService) WeekHistory(ctx context.Context, userID string, from, to time.Time) (*WeekHistory, error) {
	from = startOfDayUTC(from)
	to = startOfDayUTC(to)
	if to.Before(from) {
		return nil, ErrInvalidInput
	}

	rangeEnd := to.AddDate(0, 0, 1)
	lessonAttempts, err := s.Store.LessonAttemptsInRange(ctx, userID, from, rangeEnd)
	if err != nil {
		return nil, err
	}
	gameAttempts, err := s.Store.GameAttemptsInRange(ctx, userID, from, rangeEnd)
	if err != nil {
		return nil, err
	}

	active := make(map[string]bool)
	for _, a := range lessonAttempts {
		active[dayKey(a.CreatedAt)] = true
	}
	for _, a := range gameAttempts {
		active[dayKey(a.CreatedAt)] = true
	}

	today := dayKey(time.Now())
	var days []WeekDay
	activeCount := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayKeyFormat)
		didActivity := active[key]
		if didActivity {
			activeCount++
		}
		days = append(days, WeekDay{
			Date:        key,
			Label:       weekdayLabels[d.Weekday()],
			DidActivity: didActivity,
			IsToday:     key == today,
		})
	}

	streak, err := s.Streak(ctx, userID)
	if err != nil {
		return nil, err
	}

	xp := 0
	completed := []string{}
	if progress, err := s.Store.Progress(ctx, userID); err == nil {
		xp = progress.XP
		completed = progress.CompletedList()
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	pct, err := s.globalProgressPct(ctx, len(completed))
	if err != nil {
		return nil, err
	}

	attemptSummaries := []LessonAttemptSummary{}
	for _, a := range lessonAttempts {
		attemptSummaries = append(attemptSummaries, LessonAttemptSummary{
			LessonID:      a.LessonID,
			SelectedIndex: a.SelectedIndex,
			IsCorrect:     a.IsCorrect,
			XPAwarded:     a.XPAwarded,
			CreatedAt:     a.CreatedAt,
		})
	}

	return &WeekHistory{
		Days:              days,
		ActiveDaysCount:   activeCount,
		StreakDays:        streak,
		GlobalProgressPct: pct,
		XP:                xp,
		CompletedLessons:  completed,
		Attempts:          attemptSummaries,
	}, nil
}

// Streak counts consecutive UTC days with at least one attempt, walking
// backward from today. A day without activity today means a streak of zero.
func (s *ActivityService) Streak(ctx context.Context, userID string) (int, error) {
	times, err := s.Store.AttemptTimes(ctx, userID)
	if err != nil {
		return 0, err
	}

	active := make(map[string]bool, len(times))
	for _, t := range times {
		active[dayKey(t)] = true
	}

	streak := 0
	for d := startOfDayUTC(time.Now()); active[d.Format(dayKeyFormat)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak, nil
}

// Stats builds the dashboard summary for a user.
func (s *ActivityService) Stats(ctx context.Context, userID string) (*ActivityStats, error) {
	xp := 0
	completedCount := 0
	if progress, err := s.Store.Progress(ctx, userID); err == nil {
		xp = progress.XP
		completedCount = len(progress.CompletedList())
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	times, err := s.Store.AttemptTimes(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := dayKey(time.Now())
	didToday := false
	for _, t := range times {
		if dayKey(t) == today {
			didToday = true
			break
		}
	}

	streak, err := s.Streak(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.totalLessons(ctx)
	if err != nil {
		return nil, err
	}
	pct := progressPct(completedCount, total)

	return &ActivityStats{
		XP:                    xp,
		StreakDays:            streak,
		DidActivityToday:      didToday,
		CompletedLessonsCount: completedCount,
		TotalLessons:          total,
		GlobalProgressPct:     pct,
		FirstActivityUnlocked: len(times) > 0,
	}, nil
}

// GameStats summarises the user's game attempts.
func (s *ActivityService) GameStats(ctx context.Context, userID string) (*GameStats, error) {
	attempts, err := s.Store.GameAttempts(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &GameStats{
		Attempts:       []GameAttemptSummary{},
		GamesCompleted: len(attempts),
		DailyTarget:    s.DailyGameTarget,
		PlayedGameIDs:  []string{},
	}

	today := dayKey(time.Now())
	scoreSum := 0
	for _, a := range attempts {
		stats.Attempts = append(stats.Attempts, GameAttemptSummary{
			GameID:    a.GameID,
			Score:     a.Score,
			CreatedAt: a.CreatedAt,
		})
		stats.PlayedGameIDs = append(stats.PlayedGameIDs, a.GameID)
		scoreSum += a.Score
		if a.Score >= badgeScoreThreshold {
			stats.BadgesWon++
		}
		if dayKey(a.CreatedAt) == today {
			stats.DailyProgress++
		}
	}

	if len(attempts) > 0 {
		stats.AvgScore = int(math.Round(float64(scoreSum) / float64(len(attempts))))
	}

	return stats, nil
}

func (s *ActivityService) globalProgressPct(ctx context.Context, completedCount int) (int, error) {
	total, err := s.totalLessons(ctx)
	if err != nil {
		return 0, err
	}
	return progressPct(completedCount, total), nil
}

func (s *ActivityService) totalLessons(ctx context.Context) (int, error) {
	count, err := s.Store.LessonCount(ctx)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return s.TotalLessons, nil
	}
	return int(count), nil
}

func progressPct(completed, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(completed) / float64(total)))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func dayKey(t time.Time) string {
	return t.UTC().Format(dayKeyFormat)
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
