package auth

import (
	"net/http"
	"strings"

	"big-brain-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the cookie consulted when no Authorization header is sent
const TokenCookie = "token"

// ContextUserID is the gin context key holding the authenticated user id
const ContextUserID = "user_id"

// Middleware provides JWT authentication middleware
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth validates the bearer token (or token cookie) and sets the user context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected token")
			unauthorized(c)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// GetUserID returns the authenticated user id from the gin context
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Unauthorized", "data": nil})
}
