package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"csignes/backend/models"
	"csignes/backend/store"

	"github.com/google/uuid"
)

const (
	// XP awarded for a correct lesson answer. Wrong answers earn nothing
	// but still consume the single attempt.
	lessonXPReward = 10

	// A 0-100 game score maps linearly onto 0-20 XP.
	gameXPDivisor = 5
	gameXPMax     = 20
)

// AttemptService records lesson and game attempts. Every attempt is
// single-shot per user: the store's uniqueness constraints reject replays,
// so XP can never be granted twice for the same content.
type AttemptService struct {
	Store store.Store
}

func NewAttemptService(s store.Store) *AttemptService {
	return &AttemptService{Store: s}
}

// RecordLessonAttempt validates and records one answer submission, awarding
// XP and updating the user's progress row atomically.
func (s *AttemptService) RecordLessonAttempt(ctx context.Context, userID, lessonID string, selectedIndex int) (*models.LessonAttempt, *models.UserProgress, error) {
	if userID == "" || lessonID == "" {
		return nil, nil, fmt.Errorf("%w: missing user or lesson id", ErrInvalidInput)
	}
	if selectedIndex < 0 {
		return nil, nil, fmt.Errorf("%w: selectedIndex must be >= 0", ErrInvalidInput)
	}

	lesson, err := s.Store.Lesson(ctx, lessonID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrLessonNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	if choices := lesson.ChoiceList(); selectedIndex >= len(choices) {
		return nil, nil, fmt.Errorf("%w: selectedIndex out of range", ErrInvalidInput)
	}

	isCorrect := selectedIndex == lesson.CorrectIndex
	xp := 0
	if isCorrect {
		xp = lessonXPReward
	}

	attempt := &models.LessonAttempt{
		ID:            uuid.NewString(),
		UserID:        userID,
		LessonID:      lessonID,
		SelectedIndex: selectedIndex,
		IsCorrect:     isCorrect,
		XPAwarded:     xp,
		CreatedAt:     time.Now().UTC(),
	}

	progress, err := s.Store.CreateLessonAttempt(ctx, attempt, func(p *models.UserProgress) {
		p.XP += xp
		if !p.HasCompleted(lessonID) {
			p.SetCompletedList(append(p.CompletedList(), lessonID))
		}
		p.LastLessonID = &attempt.LessonID
		p.LastUserAnswer = &attempt.SelectedIndex
		p.LastWasCorrect = &attempt.IsCorrect
		p.LastXPEarned = &attempt.XPAwarded
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, nil, ErrAlreadyAttempted
	}
	if err != nil {
		return nil, nil, err
	}

	return attempt, progress, nil
}

// RecordGameAttempt records one play of a mini-game and adds its XP to the
// user's total. Game attempts do not touch the completed-lessons list.
func (s *AttemptService) RecordGameAttempt(ctx context.Context, userID, gameID string, score int) (*models.GameAttempt, *models.UserProgress, error) {
	if userID == "" || gameID == "" {
		return nil, nil, fmt.Errorf("%w: missing user or game id", ErrInvalidInput)
	}
	if score < 0 || score > 100 {
		return nil, nil, fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidInput)
	}

	attempt := &models.GameAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		GameID:    gameID,
		Score:     score,
		XPAwarded: gameXP(score),
		CreatedAt: time.Now().UTC(),
	}

	progress, err := s.Store.CreateGameAttempt(ctx, attempt, func(p *models.UserProgress) {
		p.XP += attempt.XPAwarded
	})
	if errors.Is(err, store.ErrDuplicate) {
		return nil, nil, ErrAlreadyPlayed
	}
	if err != nil {
		return nil, nil, err
	}

	return attempt, progress, nil
}

// LessonAttemptFor returns the recorded attempt for a (user, lesson) pair,
// or store.ErrNotFound when the lesson has not been attempted yet.
func (s *AttemptService) LessonAttemptFor(ctx context.Context, userID, lessonID string) (*models.LessonAttempt, error) {
	return s.Store.LessonAttempt(ctx, userID, lessonID)
}

func gameXP(score int) int {
	if score <= 0 {
		return 0
	}
	xp := int(math.Round(float64(score) / gameXPDivisor))
	if xp > gameXPMax {
		xp = gameXPMax
	}
	return xp
}
