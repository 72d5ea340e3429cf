package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"webtoonnote/database"
	"webtoonnote/internal/config"
	"webtoonnote/internal/http-api/handler"
	"webtoonnote/internal/http-api/middleware"
	"webtoonnote/internal/http-api/repository"
	"webtoonnote/internal/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Redis cache is optional; the catalog falls back to direct DB reads
	cache, err := repository.NewWebtoonCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		log.Printf("warning: redis unavailable, catalog cache disabled: %v", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// Repositories
	webtoonRepo := repository.NewWebtoonRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	statsRepo := repository.NewRatingStatsRepository(db)
	txManager := repository.NewTxManager(db)

	// Services
	webtoonService := service.NewWebtoonService(webtoonRepo, cache)
	reviewService := service.NewReviewService(webtoonRepo, reviewRepo, statsRepo, txManager)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.AnonymousIdentity(cfg.AnonCookieTTL))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	api := r.Group("/")
	handler.NewAuthHandler().RegisterRoutes(api)
	handler.NewWebtoonHandler(webtoonService).RegisterRoutes(api)
	handler.NewReviewHandler(reviewService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("API server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
