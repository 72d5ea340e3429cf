package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"webtoonnote/internal/http-api/models"

	"github.com/redis/go-redis/v9"
)

// WebtoonCache is a read-through cache in front of the catalog table.
// A nil cache (redis unavailable at startup) degrades to direct DB
// reads; the review write path never touches it.
type WebtoonCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWebtoonCache(addr, password string, ttl time.Duration) (*WebtoonCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &WebtoonCache{client: rdb, ttl: ttl}, nil
}

func (c *WebtoonCache) webtoonKey(id string) string {
	return fmt.Sprintf("webtoon:%s", id)
}

func (c *WebtoonCache) searchKey(query, day string) string {
	return fmt.Sprintf("webtoon:search:%s:%s", day, query)
}

func (c *WebtoonCache) GetWebtoon(ctx context.Context, id string) (*models.NormalizedWebtoon, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.webtoonKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var w models.NormalizedWebtoon
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, false
	}
	return &w, true
}

func (c *WebtoonCache) SetWebtoon(ctx context.Context, w *models.NormalizedWebtoon) {
	if c == nil || c.client == nil || w == nil {
		return
	}
	raw, err := json.Marshal(w)
	if err != nil {
		return
	}
	// Cache misses are harmless; errors here are deliberately dropped
	_ = c.client.Set(ctx, c.webtoonKey(w.ID), raw, c.ttl).Err()
}

func (c *WebtoonCache) GetSearch(ctx context.Context, query, day string) ([]models.NormalizedWebtoon, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.searchKey(query, day)).Bytes()
	if err != nil {
		return nil, false
	}
	var list []models.NormalizedWebtoon
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *WebtoonCache) SetSearch(ctx context.Context, query, day string, list []models.NormalizedWebtoon) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.searchKey(query, day), raw, c.ttl).Err()
}

func (c *WebtoonCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
