package http

import (
	"council-archive/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	videos := rg.Group("/videos")
	{
		videos.GET("/metadata", mw.Auth(), mw.AdminOnly(), h.GetMetadata)
	}
}
