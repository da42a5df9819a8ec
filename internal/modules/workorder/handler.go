package workorder

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
	orders := protected.Group("/work-orders")
	{
		orders.GET("", h.List)
		orders.POST("", h.Create)
		orders.GET("/:id", h.Get)
		orders.PATCH("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)

		orders.GET("/:id/comments", h.ListComments)
		orders.POST("/:id/comments", h.AddComment)
		orders.GET("/:id/costs", h.ListCosts)
		orders.POST("/:id/costs", h.AddCost)
	}

	protected.GET("/dashboard/stats", h.DashboardStats)
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	orders, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list work orders")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"work_orders": orders,
	})
}

func (h *Handler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	wo, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeError(c, err, "GET_FAILED", "Failed to load work order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"work_order": wo,
	})
}

func (h *Handler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	wo, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		writeError(c, err, "CREATE_FAILED", "Failed to create work order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"work_order": wo,
	})
}

func (h *Handler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	wo, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeError(c, err, "UPDATE_FAILED", "Failed to update work order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"work_order": wo,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		writeError(c, err, "DELETE_FAILED", "Failed to delete work order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Work order deleted successfully",
	})
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"comments": comments,
	})
}

func (h *Handler) AddComment(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeError(c, err, "CREATE_FAILED", "Failed to add comment")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"comment": comment,
	})
}

func (h *Handler) ListCosts(c *gin.Context) {
	costs, err := h.service.ListCosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list cost entries")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"cost_entries": costs,
	})
}

func (h *Handler) AddCost(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateCostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	entry, err := h.service.AddCost(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		writeError(c, err, "CREATE_FAILED", "Failed to add cost entry")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"cost_entry": entry,
	})
}

func (h *Handler) DashboardStats(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	stats, err := h.service.Stats(c.Request.Context(), actor)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func writeError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Work order not found")
	case errors.Is(err, ErrClientNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrInvalidValue):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
