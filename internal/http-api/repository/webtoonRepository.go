package repository

import (
	"context"
	"fmt"

	"webtoonnote/internal/http-api/models"

	"gorm.io/gorm"
)

type WebtoonRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*models.NormalizedWebtoon, error)
	GetAll(ctx context.Context) ([]models.NormalizedWebtoon, error)
	GetByDay(ctx context.Context, day string) ([]models.NormalizedWebtoon, error)
	ListTitles(ctx context.Context) ([]string, error)
	ListTitlesByDay(ctx context.Context, day string) ([]string, error)
	Search(ctx context.Context, query, day string) ([]models.NormalizedWebtoon, error)
}

type webtoonRepository struct {
	db *gorm.DB
}

func NewWebtoonRepository(db *gorm.DB) WebtoonRepository {
	return &webtoonRepository{db: db}
}

func (r *webtoonRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NormalizedWebtoon{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *webtoonRepository) GetByID(ctx context.Context, id string) (*models.NormalizedWebtoon, error) {
	var w models.NormalizedWebtoon
	if err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *webtoonRepository) GetAll(ctx context.Context) ([]models.NormalizedWebtoon, error) {
	var list []models.NormalizedWebtoon
	if err := r.db.WithContext(ctx).Order("title").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list webtoons: %w", err)
	}
	return list, nil
}

func (r *webtoonRepository) GetByDay(ctx context.Context, day string) ([]models.NormalizedWebtoon, error) {
	var list []models.NormalizedWebtoon
	err := r.db.WithContext(ctx).
		Where(`"updateDays" = ?`, day).
		Order("title").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list webtoons by day: %w", err)
	}
	return list, nil
}

func (r *webtoonRepository) ListTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).Model(&models.NormalizedWebtoon{}).
		Order("title").
		Pluck("title", &titles).Error
	if err != nil {
		return nil, fmt.Errorf("list webtoon titles: %w", err)
	}
	return titles, nil
}

func (r *webtoonRepository) ListTitlesByDay(ctx context.Context, day string) ([]string, error) {
	var titles []string
	err := r.db.WithContext(ctx).Model(&models.NormalizedWebtoon{}).
		Where(`"updateDays" = ?`, day).
		Order("title").
		Pluck("title", &titles).Error
	if err != nil {
		return nil, fmt.Errorf("list webtoon titles by day: %w", err)
	}
	return titles, nil
}

// Search performs a case-insensitive partial match of the query against
// id, title, authors, synopsis and tags, optionally narrowed to one
// update day.
func (r *webtoonRepository) Search(ctx context.Context, query, day string) ([]models.NormalizedWebtoon, error) {
	var list []models.NormalizedWebtoon

	pattern := "%" + query + "%"
	// COALESCE keeps NULL columns from defeating the ILIKE match
	db := r.db.WithContext(ctx).Where(
		`(id ILIKE ? OR title ILIKE ? OR COALESCE(authors,'') ILIKE ? OR COALESCE(synopsis,'') ILIKE ? OR COALESCE(tags,'') ILIKE ?)`,
		pattern, pattern, pattern, pattern, pattern,
	)
	if day != "" {
		db = db.Where(`"updateDays" = ?`, day)
	}

	if err := db.Order("title").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search webtoons: %w", err)
	}
	return list, nil
}
