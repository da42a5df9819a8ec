package settings

import (
	"errors"
	"net/http"

	"maintdesk/internal/middleware"
	"maintdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/settings")
	{
		group.GET("", h.Get)
		group.PATCH("", h.Update)
	}
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	current, err := h.service.Get(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"settings": current,
	})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), actor, req)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update settings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"settings": updated,
	})
}
