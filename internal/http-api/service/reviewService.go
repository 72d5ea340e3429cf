package service

import (
	"context"
	"errors"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/models"
	"webtoonnote/internal/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, webtoonID string, req *dto.CreateReviewDTO, userID string) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, webtoonID string, page, limit int) (*dto.ReviewListResponse, error)
	UpdateReview(ctx context.Context, webtoonID string, req *dto.UpdateReviewDTO, userID string) (*dto.ReviewResponse, error)
	LikeReview(ctx context.Context, reviewID int64, userID string) (*dto.ReviewLikeResponse, error)
}

type reviewService struct {
	webtoonRepo repository.WebtoonRepository
	reviewRepo  repository.ReviewRepository
	statsRepo   repository.RatingStatsRepository
	tx          repository.TxManager
}

func NewReviewService(
	webtoonRepo repository.WebtoonRepository,
	reviewRepo repository.ReviewRepository,
	statsRepo repository.RatingStatsRepository,
	tx repository.TxManager,
) ReviewService {
	return &reviewService{
		webtoonRepo: webtoonRepo,
		reviewRepo:  reviewRepo,
		statsRepo:   statsRepo,
		tx:          tx,
	}
}

// CreateReview persists a new review and folds its rating into the
// webtoon's aggregate. The uniqueness check, the insert and the
// aggregate update commit together or not at all; losing a race through
// the check window surfaces as ErrAlreadyReviewed via the unique index.
func (s *reviewService) CreateReview(ctx context.Context, webtoonID string, req *dto.CreateReviewDTO, userID string) (*dto.ReviewResponse, error) {
	exists, err := s.webtoonRepo.Exists(ctx, webtoonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrWebtoonNotFound
	}

	review := &models.Review{
		WebtoonID:       webtoonID,
		Content:         req.Content,
		Rating:          *req.Rating,
		AnonymousUserID: userID,
	}

	err = s.tx.Do(ctx, func(r repository.Repos) error {
		reviewed, err := r.Reviews.ExistsByWebtoonAndUser(webtoonID, userID)
		if err != nil {
			return err
		}
		if reviewed {
			return ErrAlreadyReviewed
		}

		if err := r.Reviews.Insert(review); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return ErrAlreadyReviewed
			}
			return err
		}

		return NewRatingAggregator(r.Stats).RecordNewRating(webtoonID, review.Rating)
	})
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// ListReviews returns the aggregate stats plus one page of reviews,
// newest first. A webtoon without any reviews reports ErrNoReviews,
// indistinguishable here from an unknown webtoon id.
func (s *reviewService) ListReviews(ctx context.Context, webtoonID string, page, limit int) (*dto.ReviewListResponse, error) {
	stats, err := s.statsRepo.Get(webtoonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoReviews
		}
		return nil, err
	}
	if stats.ReviewCount == 0 {
		return nil, ErrNoReviews
	}

	reviews, err := s.reviewRepo.ListByWebtoon(webtoonID, page, limit)
	if err != nil {
		return nil, err
	}

	return dto.NewReviewListResponse(stats, page, limit, reviews), nil
}

// UpdateReview overwrites the caller's own review in place and rebalances
// the aggregate by swapping the previous rating for the new one. The
// review row is read under a FOR UPDATE lock so concurrent edits each
// fold out the rating they actually replace. When the caller has no
// review here the failure is reported as a permission problem rather
// than a lookup miss, so the response does not leak whether anyone else
// has reviewed.
func (s *reviewService) UpdateReview(ctx context.Context, webtoonID string, req *dto.UpdateReviewDTO, userID string) (*dto.ReviewResponse, error) {
	exists, err := s.webtoonRepo.Exists(ctx, webtoonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrWebtoonNotFound
	}

	var updated *models.Review
	err = s.tx.Do(ctx, func(r repository.Repos) error {
		review, err := r.Reviews.FindByWebtoonAndUserForUpdate(webtoonID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotReviewOwner
			}
			return err
		}

		previousRating := review.Rating
		review.Content = req.Content
		review.Rating = *req.Rating
		if err := r.Reviews.Save(review); err != nil {
			return err
		}

		if err := NewRatingAggregator(r.Stats).RecordRatingChange(webtoonID, previousRating, review.Rating); err != nil {
			return err
		}

		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(updated), nil
}

// LikeReview registers a like and bumps the denormalized counter in the
// same transaction, so the counter always equals the number of like rows.
func (s *reviewService) LikeReview(ctx context.Context, reviewID int64, userID string) (*dto.ReviewLikeResponse, error) {
	var updated *models.Review
	err := s.tx.Do(ctx, func(r repository.Repos) error {
		review, err := r.Reviews.GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}

		liked, err := r.Reviews.ExistsLike(review.ID, userID)
		if err != nil {
			return err
		}
		if liked {
			return ErrAlreadyLiked
		}

		like := &models.ReviewLike{ReviewID: review.ID, AnonymousUserID: userID}
		if err := r.Reviews.InsertLike(like); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return ErrAlreadyLiked
			}
			return err
		}

		if err := r.Reviews.IncrementLikes(review.ID); err != nil {
			return err
		}

		updated, err = r.Reviews.GetByID(review.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.ReviewLikeResponse{ReviewID: updated.ID, Likes: updated.Likes}, nil
}
