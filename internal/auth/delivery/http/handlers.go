package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"council-archive/internal/model"
	"council-archive/pkg/response"
)

// Login godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent page.
// @Tags        Auth
// @Success     302
// @Router      /auth/google/login [GET]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Login(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, output.URL)
}

// Callback godoc
// @Summary     Finish Google sign-in
// @Description Exchanges the authorization code, sets the session cookie and returns the session.
// @Tags        Auth
// @Produce     json
// @Param       state query string true "Login state"
// @Param       code  query string true "Authorization code"
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Callback(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Callback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setSessionCookie(c, output.Token, int(time.Until(output.ExpiresAt)/time.Second))
	if h.postLoginURL != "" {
		c.Redirect(http.StatusFound, h.postLoginURL)
		return
	}
	response.OK(c, h.newCallbackResp(output))
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the session cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/me [GET]
func (h *handler) Me(c *gin.Context) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, meResp{User: newUserResp(sc)})
}
