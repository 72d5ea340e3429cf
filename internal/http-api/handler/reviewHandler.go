package handler

import (
	"errors"
	"net/http"
	"strconv"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/middleware"
	"webtoonnote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/webtoons/review", h.Create)
	router.GET("/webtoons/:webtoon_id/reviews", h.List)
	router.PUT("/webtoons/:webtoon_id/reviews", h.Update)
	router.POST("/reviews/:review_id/like", h.Like)
}

// Create creates a new review and updates the rating stats
// POST /webtoons/review?webtoon_id=kakao_1
func (h *ReviewHandler) Create(c *gin.Context) {
	webtoonID := c.Query("webtoon_id")
	if webtoonID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "webtoon_id query parameter is required"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "anonymous identity missing"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), webtoonID, &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWebtoonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// List retrieves rating stats and a page of reviews for a webtoon
// GET /webtoons/:webtoon_id/reviews?page=1&limit=10
func (h *ReviewHandler) List(c *gin.Context) {
	webtoonID := c.Param("webtoon_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), webtoonID, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrNoReviews) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Update overwrites the caller's own review for a webtoon
// PUT /webtoons/:webtoon_id/reviews
func (h *ReviewHandler) Update(c *gin.Context) {
	webtoonID := c.Param("webtoon_id")

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "anonymous identity missing"})
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), webtoonID, &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWebtoonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNotReviewOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoReviews):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// Like registers a like on a review for the calling user
// POST /reviews/:review_id/like
func (h *ReviewHandler) Like(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "anonymous identity missing"})
		return
	}

	result, err := h.reviewService.LikeReview(c.Request.Context(), reviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyLiked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
