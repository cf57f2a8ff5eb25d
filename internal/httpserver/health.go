package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"council-archive/pkg/response"
)

const (
	HealthMessage = "Council question archive API V1"
	HealthVersion = "1.0.0"
	ServiceName   = "council-archive"

	readyTimeout = 2 * time.Second
)

func status(s string) gin.H {
	return gin.H{
		"status":  s,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, status("healthy"))
}

// readyCheck is ready once the question store answers. A failing Redis only degrades it,
// since metadata falls back to the watch page.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	body := status("ready")
	body["storage"] = srv.storageDriver

	if err := srv.pingStorage(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck.pingStorage: %v", err)
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "storage unavailable",
			Data:      body,
		})
		return
	}

	if srv.redisClient != nil {
		body["cache"] = "redis"
		if err := srv.redisClient.Ping(ctx).Err(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck.pingRedis: %v", err)
			body["status"] = "degraded"
		}
	}

	response.OK(c, body)
}

// liveCheck
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, status("alive"))
}

func (srv HTTPServer) pingStorage(ctx context.Context) error {
	if srv.storageDriver == "postgre" {
		return srv.postgresDB.Ping(ctx)
	}
	return srv.sqliteDB.PingContext(ctx)
}
