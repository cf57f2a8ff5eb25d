package http

import (
	"council-archive/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the sign-in flow under rg and the session lookup under api.
func RegisterRoutes(rg *gin.RouterGroup, api *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	google := rg.Group("/google")
	{
		google.GET("/login", mw.RateLimit(), h.Login)
		google.GET("/callback", mw.RateLimit(), h.Callback)
	}
	rg.POST("/logout", h.Logout)

	api.GET("/me", mw.Auth(), h.Me)
}
