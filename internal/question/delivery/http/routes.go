package http

import (
	"council-archive/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Reads are public and rate limited; the own-records listing needs a session
// and writes require an admin session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	questions := rg.Group("/questions")
	{
		questions.GET("", mw.RateLimit(), h.Search)
		questions.GET("/mine", mw.Auth(), h.Mine)
		questions.GET("/:id", mw.RateLimit(), h.Detail)
		questions.POST("/preview", mw.Auth(), mw.AdminOnly(), h.Preview)
		questions.POST("", mw.Auth(), mw.AdminOnly(), h.Submit)
		questions.DELETE("/:id", mw.Auth(), mw.AdminOnly(), h.Delete)
	}
}
