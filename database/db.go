package database

import (
	"fmt"
	"time"

	"webtoonnote/internal/config"
	"webtoonnote/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection pool through GORM. TranslateError
// maps driver errors onto GORM's portable sentinels (notably duplicate
// keys), which the repositories rely on.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate applies the schema for the tables this service owns. The
// normalized_webtoon table is included so a fresh environment comes up,
// but its rows are only ever written by the ingestion pipeline.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.NormalizedWebtoon{},
		&models.Review{},
		&models.ReviewLike{},
		&models.RatingStats{},
	)
}
