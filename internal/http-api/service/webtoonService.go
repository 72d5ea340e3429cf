package service

import (
	"context"
	"errors"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/repository"

	"gorm.io/gorm"
)

type WebtoonService interface {
	GetAll(ctx context.Context) (*dto.WebtoonListResponse, error)
	GetByDay(ctx context.Context, day string) (*dto.WebtoonListResponse, error)
	GetTitles(ctx context.Context) (*dto.WebtoonTitleListResponse, error)
	GetTitlesByDay(ctx context.Context, day string) (*dto.WebtoonTitleListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.WebtoonResponse, error)
	Search(ctx context.Context, query, day string) (*dto.WebtoonListResponse, error)
}

type webtoonService struct {
	webtoonRepo repository.WebtoonRepository
	cache       *repository.WebtoonCache
}

// NewWebtoonService builds the read side over the catalog. cache may be
// nil, in which case every call goes straight to the database.
func NewWebtoonService(webtoonRepo repository.WebtoonRepository, cache *repository.WebtoonCache) WebtoonService {
	return &webtoonService{
		webtoonRepo: webtoonRepo,
		cache:       cache,
	}
}

func (s *webtoonService) GetAll(ctx context.Context) (*dto.WebtoonListResponse, error) {
	webtoons, err := s.webtoonRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewWebtoonListResponse(webtoons), nil
}

func (s *webtoonService) GetByDay(ctx context.Context, day string) (*dto.WebtoonListResponse, error) {
	webtoons, err := s.webtoonRepo.GetByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return dto.NewWebtoonListResponse(webtoons), nil
}

func (s *webtoonService) GetTitles(ctx context.Context) (*dto.WebtoonTitleListResponse, error) {
	titles, err := s.webtoonRepo.ListTitles(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.WebtoonTitleListResponse{Count: len(titles), Titles: titles}, nil
}

func (s *webtoonService) GetTitlesByDay(ctx context.Context, day string) (*dto.WebtoonTitleListResponse, error) {
	titles, err := s.webtoonRepo.ListTitlesByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	return &dto.WebtoonTitleListResponse{Count: len(titles), Titles: titles}, nil
}

func (s *webtoonService) GetByID(ctx context.Context, id string) (*dto.WebtoonResponse, error) {
	if cached, ok := s.cache.GetWebtoon(ctx, id); ok {
		return dto.FromModelToWebtoonResponse(cached), nil
	}

	webtoon, err := s.webtoonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebtoonNotFound
		}
		return nil, err
	}

	s.cache.SetWebtoon(ctx, webtoon)
	return dto.FromModelToWebtoonResponse(webtoon), nil
}

func (s *webtoonService) Search(ctx context.Context, query, day string) (*dto.WebtoonListResponse, error) {
	if cached, ok := s.cache.GetSearch(ctx, query, day); ok {
		return dto.NewWebtoonListResponse(cached), nil
	}

	webtoons, err := s.webtoonRepo.Search(ctx, query, day)
	if err != nil {
		return nil, err
	}

	s.cache.SetSearch(ctx, query, day, webtoons)
	return dto.NewWebtoonListResponse(webtoons), nil
}
