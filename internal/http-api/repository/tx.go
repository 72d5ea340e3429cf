package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repos bundles the write-side repositories bound to a single
// transaction. Everything touched through it commits or rolls back
// together.
type Repos struct {
	Reviews ReviewRepository
	Stats   RatingStatsRepository
}

// TxManager runs a function inside one database transaction. When fn
// returns an error (or panics) the transaction is rolled back and
// nothing it did is observable.
type TxManager interface {
	Do(ctx context.Context, fn func(r Repos) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Do(ctx context.Context, fn func(r Repos) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repos{
			Reviews: NewReviewRepository(tx),
			Stats:   NewRatingStatsRepository(tx),
		})
	})
}
