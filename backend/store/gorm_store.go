package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"csignes/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store on top of a gorm connection. It relies on the
// connection being opened with TranslateError so unique-constraint
// violations surface as gorm.ErrDuplicatedKey on every dialect.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		Order("sequence_order ASC").
		Find(&courses).Error
	return courses, err
}

func (s *GormStore) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := s.DB.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_order ASC")
		}).
		First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *GormStore) Lesson(ctx context.Context, id string) (*models.Lesson, error) {
	var lesson models.Lesson
	err := s.DB.WithContext(ctx).First(&lesson, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (s *GormStore) LessonCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Lesson{}).Count(&count).Error
	return count, err
}

func (s *GormStore) Signs(ctx context.Context, query string) ([]models.Sign, error) {
	db := s.DB.WithContext(ctx).Model(&models.Sign{})
	if query != "" {
		db = db.Where("LOWER(word) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	var signs []models.Sign
	err := db.Order("word ASC").Find(&signs).Error
	return signs, err
}

func (s *GormStore) Progress(ctx context.Context, userID string) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := s.DB.WithContext(ctx).First(&progress, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *GormStore) LessonAttempt(ctx context.Context, userID, lessonID string) (*models.LessonAttempt, error) {
	var attempt models.LessonAttempt
	err := s.DB.WithContext(ctx).
		First(&attempt, "user_id = ? AND lesson_id = ?", userID, lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *GormStore) LessonAttemptsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.LessonAttempt, error) {
	var attempts []models.LessonAttempt
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (s *GormStore) GameAttemptsInRange(ctx context.Context, userID string, from, to time.Time) ([]models.GameAttempt, error) {
	var attempts []models.GameAttempt
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at ASC").
		Find(&attempts).Error
	return attempts, err
}

func (s *GormStore) GameAttempts(ctx context.Context, userID string) ([]models.GameAttempt, error) {
	var attempts []models.GameAttempt
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (s *GormStore) AttemptTimes(ctx context.Context, userID string) ([]time.Time, error) {
	var times []time.Time

	var lessonTimes []time.Time
	if err := s.DB.WithContext(ctx).Model(&models.LessonAttempt{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &lessonTimes).Error; err != nil {
		return nil, err
	}
	times = append(times, lessonTimes...)

	var gameTimes []time.Time
	if err := s.DB.WithContext(ctx).Model(&models.GameAttempt{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &gameTimes).Error; err != nil {
		return nil, err
	}
	times = append(times, gameTimes...)

	return times, nil
}

func (s *GormStore) CreateLessonAttempt(ctx context.Context, attempt *models.LessonAttempt, mutate func(*models.UserProgress)) (*models.UserProgress, error) {
	var progress models.UserProgress

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return err
		}
		return s.applyProgress(tx, attempt.UserID, &progress, mutate)
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (s *GormStore) CreateGameAttempt(ctx context.Context, attempt *models.GameAttempt, mutate func(*models.UserProgress)) (*models.UserProgress, error) {
	var progress models.UserProgress

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicate
			}
			return err
		}
		return s.applyProgress(tx, attempt.UserID, &progress, mutate)
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// applyProgress loads the user's progress row for update (creating it when
// missing), applies the mutation and saves it, all inside the caller's
// transaction.
func (s *GormStore) applyProgress(tx *gorm.DB, userID string, progress *models.UserProgress, mutate func(*models.UserProgress)) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(progress, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		*progress = models.UserProgress{UserID: userID, CompletedLessons: "[]"}
		if err := tx.Create(progress).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	mutate(progress)
	return tx.Save(progress).Error
}
