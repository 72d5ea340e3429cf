package service

import (
	"errors"

	"webtoonnote/internal/http-api/models"
	"webtoonnote/internal/http-api/repository"

	"gorm.io/gorm"
)

// RatingAggregator maintains the per-webtoon (average_rating,
// review_count) pair incrementally, from the prior aggregate and the
// changed value only, never by rescanning the reviews table.
//
// It must run inside the same transaction as the review mutation it
// accounts for: the repository it wraps takes row locks that hold until
// that transaction ends.
type RatingAggregator struct {
	stats repository.RatingStatsRepository
}

func NewRatingAggregator(stats repository.RatingStatsRepository) *RatingAggregator {
	return &RatingAggregator{stats: stats}
}

// RecordNewRating folds one newly created review into the aggregate,
// creating the stats row on the webtoon's first review. The creation is
// an upsert: two first reviews can both miss the locked read, and the
// loser must fold into the winner's row rather than fail.
func (a *RatingAggregator) RecordNewRating(webtoonID string, rating float64) error {
	stats, err := a.stats.GetForUpdate(webtoonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return a.stats.CreateOrFold(&models.RatingStats{
			WebtoonID:     webtoonID,
			AverageRating: rating,
			ReviewCount:   1,
		})
	}
	if err != nil {
		return err
	}

	total := stats.AverageRating*float64(stats.ReviewCount) + rating
	stats.ReviewCount++
	stats.AverageRating = total / float64(stats.ReviewCount)
	return a.stats.Save(stats)
}

// RecordRatingChange replaces one prior contribution with a new value.
// The review count is unchanged: one review was swapped for one review.
// A missing or empty stats row means the aggregate was never seeded for
// this webtoon, which a rating change presupposes.
func (a *RatingAggregator) RecordRatingChange(webtoonID string, previousRating, newRating float64) error {
	stats, err := a.stats.GetForUpdate(webtoonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoReviews
	}
	if err != nil {
		return err
	}
	if stats.ReviewCount == 0 {
		return ErrNoReviews
	}

	total := stats.AverageRating*float64(stats.ReviewCount) - previousRating + newRating
	stats.AverageRating = total / float64(stats.ReviewCount)
	return a.stats.Save(stats)
}
