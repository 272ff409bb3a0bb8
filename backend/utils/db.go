package utils

import (
	"fmt"

	"csignes/backend/config"
	"csignes/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the postgres connection and migrates the schema.
// TranslateError is required: the attempt services rely on duplicate-key
// violations surfacing as gorm.ErrDuplicatedKey.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := MigrateDB(db); err != nil {
		return nil, err
	}

	return db, nil
}

// MigrateDB creates or updates every table the app uses.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Course{},
		&models.Lesson{},
		&models.Sign{},
		&models.UserProgress{},
		&models.LessonAttempt{},
		&models.GameAttempt{},
	)
}
