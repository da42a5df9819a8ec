package middleware

import (
	"context"
	"net/http"
	"strings"

	"maintdesk/internal/domain"
	"maintdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the identity-provider session token.
const SessionCookieName = "session_token"

// UserResolver turns the presented credentials into an active user.
// The cookie session is tried first, the bearer token is the fallback.
type UserResolver interface {
	ResolveUser(ctx context.Context, cookieToken, bearerToken string) (*domain.User, error)
}

func Authenticate(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, _ := c.Cookie(SessionCookieName)

		bearer := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			bearer = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		}

		user, err := resolver.ResolveUser(c.Request.Context(), cookieToken, bearer)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))

		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or
// nil on unauthenticated routes.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
