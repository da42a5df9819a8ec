package auth

import (
	"errors"
	"net/http"
	"time"

	"maintdesk/internal/middleware"
	"maintdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service    *Service
	sessionTTL time.Duration
}

func NewHandler(service *Service, sessionTTL time.Duration) *Handler {
	return &Handler{
		service:    service,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/google/session", h.GoogleSession)
		// Logout only touches the presented cookie, so it stays public
		// and idempotent.
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.GET("/me", h.Me)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown role")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrAccountInactive):
			response.Error(c, http.StatusUnauthorized, "ACCOUNT_INACTIVE", "Account is inactive")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// GoogleSession exchanges the identity-provider session id from the
// X-Session-ID header for a server-trusted session cookie.
func (h *Handler) GoogleSession(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_SESSION_ID", "Session ID required")
		return
	}

	user, session, err := h.service.ExchangeSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionExchange) {
			response.Error(c, http.StatusBadRequest, "SESSION_EXCHANGE_FAILED", "Failed to validate session")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SESSION_FAILED", "Failed to create session")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, session.SessionToken,
		int(h.sessionTTL/time.Second), "/", "", true, true)

	response.Success(c, http.StatusOK, gin.H{
		"user": user,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	cookieToken, _ := c.Cookie(middleware.SessionCookieName)

	if err := h.service.Logout(c.Request.Context(), cookieToken); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)

	response.Success(c, http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": user,
	})
}
