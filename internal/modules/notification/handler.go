package notification

import (
	"errors"
	"log"
	"net/http"

	"maintdesk/internal/middleware"
	"maintdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The route sits behind the auth middleware; cross-origin browsers
	// already passed the CORS allowlist.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.GET("/stream", h.Stream)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.POST("/mark-all-read", h.MarkAllRead)
	}
}

func (h *Handler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	notifications, err := h.service.List(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": notifications,
	})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	count, err := h.service.CountUnread(c.Request.Context(), actor.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "COUNT_FAILED", "Failed to count notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"unread": count,
	})
}

func (h *Handler) MarkRead(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), actor.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark notification read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Notification marked as read",
	})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	if err := h.service.MarkAllRead(c.Request.Context(), actor.ID); err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark notifications read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "All notifications marked as read",
	})
}

// Stream upgrades to a websocket and keeps the connection registered
// until the client goes away. Pushes happen from Service.Notify.
func (h *Handler) Stream(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed for user %s: %v", actor.ID, err)
		return
	}

	h.service.Hub().Register(actor.ID, conn)
	defer h.service.Hub().Unregister(actor.ID)

	for {
		// Drain control/client frames; the stream is server-push only.
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
