package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"council-archive/internal/model"
	pkgErrors "council-archive/pkg/errors"
)

var errMissingID = errors.New("id is required")

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSubmitReq binds the submit request body and reads the operator scope.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, model.Scope, error) {
	var req submitReq
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return req, sc, pkgErrors.ErrUnauthorized
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, err
	}
	return req, sc, req.validate()
}

// processSearchReq binds and validates the search query parameters.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processMineReq binds the search query parameters and reads the operator scope.
func (h *handler) processMineReq(c *gin.Context) (searchReq, model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok || sc.Email == "" {
		return searchReq{}, sc, pkgErrors.ErrUnauthorized
	}
	req, err := h.processSearchReq(c)
	return req, sc, err
}

// processDeleteReq reads the URI id and the operator scope.
func (h *handler) processDeleteReq(c *gin.Context) (string, model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		return "", sc, pkgErrors.ErrUnauthorized
	}
	id := c.Param("id")
	if id == "" {
		return "", sc, errMissingID
	}
	return id, sc, nil
}
