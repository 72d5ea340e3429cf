package dto

import (
	"time"

	"webtoonnote/internal/http-api/models"
)

// CreateReviewDTO is the payload for submitting a new review. Rating is
// a pointer so that a legitimate 0.0 survives the required check.
type CreateReviewDTO struct {
	Content string   `json:"content" binding:"required,min=1,max=2000"`
	Rating  *float64 `json:"rating" binding:"required,min=0,max=5"`
}

// UpdateReviewDTO fully replaces the caller's existing review.
type UpdateReviewDTO struct {
	Content string   `json:"content" binding:"required,min=1,max=2000"`
	Rating  *float64 `json:"rating" binding:"required,min=0,max=5"`
}

type ReviewResponse struct {
	ID              int64     `json:"id"`
	WebtoonID       string    `json:"webtoon_id"`
	Content         string    `json:"content"`
	Rating          float64   `json:"rating"`
	Likes           int64     `json:"likes"`
	AnonymousUserID string    `json:"anonymous_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:              review.ID,
		WebtoonID:       review.WebtoonID,
		Content:         review.Content,
		Rating:          review.Rating,
		Likes:           review.Likes,
		AnonymousUserID: review.AnonymousUserID,
		CreatedAt:       review.CreatedAt,
		UpdatedAt:       review.UpdatedAt,
	}
}

// ReviewListResponse combines the aggregate stats with one page of
// reviews for a webtoon.
type ReviewListResponse struct {
	WebtoonID     string           `json:"webtoon_id"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
	Page          int              `json:"page"`
	Limit         int              `json:"limit"`
	Reviews       []ReviewResponse `json:"reviews"`
}

func NewReviewListResponse(stats *models.RatingStats, page, limit int, reviews []models.Review) *ReviewListResponse {
	items := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, *FromModelToReviewResponse(&reviews[i]))
	}

	return &ReviewListResponse{
		WebtoonID:     stats.WebtoonID,
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
		Page:          page,
		Limit:         limit,
		Reviews:       items,
	}
}

type ReviewLikeResponse struct {
	ReviewID int64 `json:"review_id"`
	Likes    int64 `json:"likes"`
}
