package handler

import (
	"errors"
	"net/http"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type WebtoonHandler struct {
	webtoonService service.WebtoonService
}

func NewWebtoonHandler(webtoonService service.WebtoonService) *WebtoonHandler {
	return &WebtoonHandler{
		webtoonService: webtoonService,
	}
}

// RegisterRoutes registers catalog read routes
func (h *WebtoonHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/webtoons", h.List)
	router.GET("/webtoons_title", h.ListTitles)
	router.GET("/webtoons/day/:day", h.ListByDay)
	router.GET("/webtoons_title/day/:day", h.ListTitlesByDay)
	router.GET("/webtoons/:webtoon_id", h.GetByID)
	router.GET("/search", h.Search)
}

// List returns the full catalog
// GET /webtoons
func (h *WebtoonHandler) List(c *gin.Context) {
	webtoons, err := h.webtoonService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, webtoons)
}

// ListTitles returns only the titles of the full catalog
// GET /webtoons_title
func (h *WebtoonHandler) ListTitles(c *gin.Context) {
	titles, err := h.webtoonService.GetTitles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, titles)
}

// ListByDay returns webtoons updating on the given day
// GET /webtoons/day/:day
func (h *WebtoonHandler) ListByDay(c *gin.Context) {
	day := c.Param("day")
	if !dto.IsValidUpdateDay(day) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day parameter. Use one of: MON, TUE, WED, THR, FRI, SAT, SUN",
		})
		return
	}

	webtoons, err := h.webtoonService.GetByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, webtoons)
}

// ListTitlesByDay returns only titles for the given update day
// GET /webtoons_title/day/:day
func (h *WebtoonHandler) ListTitlesByDay(c *gin.Context) {
	day := c.Param("day")
	if !dto.IsValidUpdateDay(day) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day parameter. Use one of: MON, TUE, WED, THR, FRI, SAT, SUN",
		})
		return
	}

	titles, err := h.webtoonService.GetTitlesByDay(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, titles)
}

// GetByID returns a single catalog entry
// GET /webtoons/:webtoon_id
func (h *WebtoonHandler) GetByID(c *gin.Context) {
	webtoon, err := h.webtoonService.GetByID(c.Request.Context(), c.Param("webtoon_id"))
	if err != nil {
		if errors.Is(err, service.ErrWebtoonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, webtoon)
}

// Search matches the query against id, title, authors, synopsis and
// tags, with an optional update-day filter
// GET /search?q=...&day=MON
func (h *WebtoonHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q query parameter is required"})
		return
	}

	day := c.Query("day")
	if day != "" && !dto.IsValidUpdateDay(day) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day parameter. Use one of: MON, TUE, WED, THR, FRI, SAT, SUN",
		})
		return
	}

	webtoons, err := h.webtoonService.Search(c.Request.Context(), query, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, webtoons)
}
