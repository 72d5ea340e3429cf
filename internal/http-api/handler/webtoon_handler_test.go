package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/handler"
	"webtoonnote/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWebtoonService mocks the service.WebtoonService interface
type MockWebtoonService struct {
	mock.Mock
}

func (m *MockWebtoonService) GetAll(ctx context.Context) (*dto.WebtoonListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonListResponse), args.Error(1)
}

func (m *MockWebtoonService) GetByDay(ctx context.Context, day string) (*dto.WebtoonListResponse, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonListResponse), args.Error(1)
}

func (m *MockWebtoonService) GetTitles(ctx context.Context) (*dto.WebtoonTitleListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonTitleListResponse), args.Error(1)
}

func (m *MockWebtoonService) GetTitlesByDay(ctx context.Context, day string) (*dto.WebtoonTitleListResponse, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonTitleListResponse), args.Error(1)
}

func (m *MockWebtoonService) GetByID(ctx context.Context, id string) (*dto.WebtoonResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonResponse), args.Error(1)
}

func (m *MockWebtoonService) Search(ctx context.Context, query, day string) (*dto.WebtoonListResponse, error) {
	args := m.Called(ctx, query, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WebtoonListResponse), args.Error(1)
}

func setupWebtoonRouter(svc service.WebtoonService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewWebtoonHandler(svc).RegisterRoutes(r.Group("/"))
	return r
}

func TestListByDayEndpoint_InvalidDay(t *testing.T) {
	mockSvc := new(MockWebtoonService)
	router := setupWebtoonRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/webtoons/day/FUN", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetByDay", mock.Anything, mock.Anything)
}

func TestListByDayEndpoint_ValidDay(t *testing.T) {
	mockSvc := new(MockWebtoonService)
	router := setupWebtoonRouter(mockSvc)

	mockSvc.On("GetByDay", mock.Anything, "MON").
		Return(&dto.WebtoonListResponse{Count: 1, Webtoons: []dto.WebtoonResponse{{ID: "kakao_1", Title: "Tower"}}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/webtoons/day/MON", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestSearchEndpoint_MissingQuery(t *testing.T) {
	mockSvc := new(MockWebtoonService)
	router := setupWebtoonRouter(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchEndpoint_WithDayFilter(t *testing.T) {
	mockSvc := new(MockWebtoonService)
	router := setupWebtoonRouter(mockSvc)

	mockSvc.On("Search", mock.Anything, "tower", "WED").
		Return(&dto.WebtoonListResponse{Count: 0, Webtoons: []dto.WebtoonResponse{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/search?q=tower&day=WED", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestGetWebtoonEndpoint_NotFound(t *testing.T) {
	mockSvc := new(MockWebtoonService)
	router := setupWebtoonRouter(mockSvc)

	mockSvc.On("GetByID", mock.Anything, "kakao_404").Return(nil, service.ErrWebtoonNotFound)

	req := httptest.NewRequest(http.MethodGet, "/webtoons/kakao_404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
