package repository

import (
	"fmt"

	"webtoonnote/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Insert(review *models.Review) error
	Save(review *models.Review) error
	GetByID(id int64) (*models.Review, error)
	ExistsByWebtoonAndUser(webtoonID, userID string) (bool, error)
	FindByWebtoonAndUserForUpdate(webtoonID, userID string) (*models.Review, error)
	ListByWebtoon(webtoonID string, page, limit int) ([]models.Review, error)
	InsertLike(like *models.ReviewLike) error
	ExistsLike(reviewID int64, userID string) (bool, error)
	IncrementLikes(reviewID int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Insert creates a new review. A duplicate (webtoon_id, anonymous_user_id)
// pair surfaces as ErrConflict.
func (r *reviewRepository) Insert(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert review: %w", ErrConflict)
		}
		return fmt.Errorf("insert review: %w", err)
	}
	// GORM populates review.ID and the timestamps
	return nil
}

// Save persists an in-place edit of an existing review.
func (r *reviewRepository) Save(review *models.Review) error {
	if err := r.db.Save(review).Error; err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(id int64) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsByWebtoonAndUser(webtoonID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("webtoon_id = ? AND anonymous_user_id = ?", webtoonID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByWebtoonAndUserForUpdate returns the author's review for the
// webtoon with a FOR UPDATE lock: the rating it reports cannot change
// before the enclosing transaction ends, and callers fold that rating
// out of the aggregate. The unique index guarantees at most one row.
func (r *reviewRepository) FindByWebtoonAndUserForUpdate(webtoonID, userID string) (*models.Review, error) {
	var review models.Review
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("webtoon_id = ? AND anonymous_user_id = ?", webtoonID, userID).
		Order("created_at DESC").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByWebtoon returns one page of reviews, newest first. page is
// 1-based; a non-positive limit yields an empty page rather than an error.
func (r *reviewRepository) ListByWebtoon(webtoonID string, page, limit int) ([]models.Review, error) {
	if limit <= 0 {
		return []models.Review{}, nil
	}
	if page < 1 {
		page = 1
	}

	reviews := make([]models.Review, 0, limit)

	offset := (page - 1) * limit
	err := r.db.Where("webtoon_id = ?", webtoonID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// InsertLike records a like. A duplicate (review_id, anonymous_user_id)
// pair surfaces as ErrConflict.
func (r *reviewRepository) InsertLike(like *models.ReviewLike) error {
	if err := r.db.Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert like: %w", ErrConflict)
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *reviewRepository) ExistsLike(reviewID int64, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReviewLike{}).
		Where("review_id = ? AND anonymous_user_id = ?", reviewID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementLikes bumps the denormalized like counter atomically in the
// database rather than via read-modify-write in Go.
func (r *reviewRepository) IncrementLikes(reviewID int64) error {
	result := r.db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if result.Error != nil {
		return fmt.Errorf("increment likes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
