package service

import "errors"

// Business-rule failures raised by the services. Handlers translate
// these to HTTP status codes with errors.Is; anything else is a 500.
var (
	ErrWebtoonNotFound = errors.New("webtoon not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNoReviews       = errors.New("no reviews exist for this webtoon")
	ErrAlreadyReviewed = errors.New("a review for this webtoon already exists")
	ErrAlreadyLiked    = errors.New("this review was already liked by the user")
	ErrNotReviewOwner  = errors.New("only the author may update a review")
)
