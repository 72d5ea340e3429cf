package service

import (
	"testing"

	"webtoonnote/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestRecordNewRating_SeedsRowOnFirstReview(t *testing.T) {
	mockStats := new(MockRatingStatsRepository)
	agg := NewRatingAggregator(mockStats)

	mockStats.On("GetForUpdate", "kakao_1").Return(nil, gorm.ErrRecordNotFound)
	mockStats.On("CreateOrFold", mock.MatchedBy(func(s *models.RatingStats) bool {
		return s.WebtoonID == "kakao_1" && s.AverageRating == 4.5 && s.ReviewCount == 1
	})).Return(nil)

	err := agg.RecordNewRating("kakao_1", 4.5)

	assert.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestRecordNewRating_FoldsIntoExistingAverage(t *testing.T) {
	mockStats := new(MockRatingStatsRepository)
	agg := NewRatingAggregator(mockStats)

	mockStats.On("GetForUpdate", "kakao_1").
		Return(&models.RatingStats{WebtoonID: "kakao_1", AverageRating: 3.0, ReviewCount: 3}, nil)
	mockStats.On("Save", mock.MatchedBy(func(s *models.RatingStats) bool {
		// (3.0*3 + 5.0) / 4 = 3.5
		return s.ReviewCount == 4 && s.AverageRating == 3.5
	})).Return(nil)

	err := agg.RecordNewRating("kakao_1", 5.0)

	assert.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestRecordRatingChange_KeepsCount(t *testing.T) {
	mockStats := new(MockRatingStatsRepository)
	agg := NewRatingAggregator(mockStats)

	mockStats.On("GetForUpdate", "kakao_1").
		Return(&models.RatingStats{WebtoonID: "kakao_1", AverageRating: 3.0, ReviewCount: 2}, nil)
	mockStats.On("Save", mock.MatchedBy(func(s *models.RatingStats) bool {
		// (3.0*2 - 4.0 + 0.0) / 2 = 1.0
		return s.ReviewCount == 2 && s.AverageRating == 1.0
	})).Return(nil)

	err := agg.RecordRatingChange("kakao_1", 4.0, 0.0)

	assert.NoError(t, err)
	mockStats.AssertExpectations(t)
}

func TestRecordRatingChange_MissingRow(t *testing.T) {
	mockStats := new(MockRatingStatsRepository)
	agg := NewRatingAggregator(mockStats)

	mockStats.On("GetForUpdate", "kakao_1").Return(nil, gorm.ErrRecordNotFound)

	err := agg.RecordRatingChange("kakao_1", 4.0, 2.0)

	assert.ErrorIs(t, err, ErrNoReviews)
	mockStats.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRecordRatingChange_EmptyRow(t *testing.T) {
	mockStats := new(MockRatingStatsRepository)
	agg := NewRatingAggregator(mockStats)

	mockStats.On("GetForUpdate", "kakao_1").
		Return(&models.RatingStats{WebtoonID: "kakao_1", ReviewCount: 0}, nil)

	err := agg.RecordRatingChange("kakao_1", 4.0, 2.0)

	assert.ErrorIs(t, err, ErrNoReviews)
	mockStats.AssertNotCalled(t, "Save", mock.Anything)
}
