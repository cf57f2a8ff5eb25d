package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"council-archive/internal/model"
	"council-archive/pkg/response"
)

const bearerPrefix = "Bearer "

// Auth requires a valid session from the session cookie or an Authorization bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.sessionToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{
			UserID:  payload.UserID,
			Email:   payload.Email,
			Name:    payload.Name,
			IsAdmin: payload.IsAdmin,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminOnly must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := model.GetScopeFromContext(c.Request.Context())
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !sc.IsAdmin {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieConfig.Name); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	return ""
}
