package repository

import (
	"fmt"

	"webtoonnote/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingStatsRepository interface {
	Get(webtoonID string) (*models.RatingStats, error)
	GetForUpdate(webtoonID string) (*models.RatingStats, error)
	CreateOrFold(stats *models.RatingStats) error
	Save(stats *models.RatingStats) error
}

type ratingStatsRepository struct {
	db *gorm.DB
}

func NewRatingStatsRepository(db *gorm.DB) RatingStatsRepository {
	return &ratingStatsRepository{db: db}
}

func (r *ratingStatsRepository) Get(webtoonID string) (*models.RatingStats, error) {
	var stats models.RatingStats
	if err := r.db.First(&stats, "webtoon_id = ?", webtoonID).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetForUpdate reads the stats row with a FOR UPDATE lock. Concurrent
// writers for the same webtoon serialize on this row until the enclosing
// transaction commits or rolls back.
func (r *ratingStatsRepository) GetForUpdate(webtoonID string) (*models.RatingStats, error) {
	var stats models.RatingStats
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stats, "webtoon_id = ?", webtoonID).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateOrFold inserts the aggregate row seeded with a first review.
// When a concurrent first review already created the row, the single
// upsert statement folds the rating into it instead, so neither racer
// sees a duplicate-key failure.
func (r *ratingStatsRepository) CreateOrFold(stats *models.RatingStats) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "webtoon_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"average_rating": gorm.Expr(
				"(webtoon_rating_stats.average_rating * webtoon_rating_stats.review_count + EXCLUDED.average_rating) / (webtoon_rating_stats.review_count + 1)"),
			"review_count": gorm.Expr("webtoon_rating_stats.review_count + 1"),
			"updated_at":   gorm.Expr("now()"),
		}),
	}).Create(stats).Error
	if err != nil {
		return fmt.Errorf("upsert rating stats: %w", err)
	}
	return nil
}

func (r *ratingStatsRepository) Save(stats *models.RatingStats) error {
	if err := r.db.Save(stats).Error; err != nil {
		return fmt.Errorf("save rating stats: %w", err)
	}
	return nil
}
