package maintenance

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
	pm := protected.Group("/preventive-maintenance")
	{
		pm.GET("", h.List)
		pm.POST("", h.Create)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	tasks, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list maintenance tasks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"preventive_maintenance": tasks,
	})
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pm, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create maintenance task")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"preventive_maintenance": pm,
	})
}
