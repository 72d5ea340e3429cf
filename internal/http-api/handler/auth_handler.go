package handler

import (
	"net/http"

	"webtoonnote/internal/http-api/dto"
	"webtoonnote/internal/http-api/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/auth/anonymous", h.AnonymousStatus)
}

// AnonymousStatus reports the caller's anon_id, issuing one when the
// cookie is missing (the AnonymousIdentity middleware already did the
// actual issuing by the time this runs)
// GET /auth/anonymous
func (h *AuthHandler) AnonymousStatus(c *gin.Context) {
	anonID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "anonymous identity missing"})
		return
	}

	status := "existing"
	if _, isNew := c.Get(middleware.ContextIsNewUserKey); isNew {
		status = "new"
	}

	c.JSON(http.StatusOK, dto.AnonymousStatusResponse{AnonID: anonID, Status: status})
}
