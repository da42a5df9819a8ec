package user

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
	users := protected.Group("/users")
	{
		users.GET("", h.List)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Deactivate)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	users, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err, "LIST_FAILED", "Failed to list users")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
	})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), actor, c.Param("id"), updates); err != nil {
		writeError(c, err, "UPDATE_FAILED", "Failed to update user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "User updated successfully",
	})
}

func (h *Handler) Deactivate(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.Deactivate(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err, "DEACTIVATE_FAILED", "Failed to deactivate user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "User deactivated successfully",
	})
}

func writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrFieldNotAllowed):
		response.Error(c, http.StatusBadRequest, "FIELD_NOT_ALLOWED", "Field cannot be updated through this endpoint")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
