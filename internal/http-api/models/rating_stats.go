package models

import "time"

// RatingStats keeps the running average rating and review count per
// webtoon. The row is created lazily with the first review and updated
// incrementally on every create/update, never recomputed from scratch.
type RatingStats struct {
	WebtoonID     string    `json:"webtoon_id" gorm:"primaryKey;size:64"`
	AverageRating float64   `json:"average_rating" gorm:"not null;default:0"`
	ReviewCount   int64     `json:"review_count" gorm:"not null;default:0"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (RatingStats) TableName() string {
	return "webtoon_rating_stats"
}
