package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// processCallbackReq binds the OAuth redirect query parameters.
func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cookieConfig.Name,
		token,
		maxAge,
		h.cookieConfig.Path,
		h.cookieConfig.Domain,
		h.cookieConfig.Secure,
		h.cookieConfig.HTTPOnly,
	)
}
