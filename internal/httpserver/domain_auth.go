package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "council-archive/internal/auth/delivery/http"
	authUC "council-archive/internal/auth/usecase"
	"council-archive/internal/middleware"
)

// setupAuthDomain registers Google sign-in under /auth and the session lookup under /api/v1.
// Without a Google client only /api/v1/me is served; existing sessions keep working.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, rg *gin.RouterGroup, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.googleAuth == nil {
		srv.l.Warnf(ctx, "Google OAuth not configured, sign-in routes disabled")
		api.GET("/me", mw.Auth(), authHTTP.New(srv.l, nil, srv.cookie, srv.postLoginURL).Me)
		return nil
	}

	uc := authUC.New(srv.l, srv.googleAuth, srv.jwtManager, srv.auth.SessionTTL, srv.auth.AdminEmails)
	h := authHTTP.New(srv.l, uc, srv.cookie, srv.postLoginURL)
	authHTTP.RegisterRoutes(rg, api, h, mw)

	if len(srv.auth.AdminEmails) == 0 {
		srv.l.Warnf(ctx, "auth.admin_emails is empty: every signed-in user can edit the archive")
	}
	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
