package http

import (
	"github.com/gin-gonic/gin"

	"council-archive/pkg/response"
)

// Preview godoc
// @Summary     Preview pasted timestamps
// @Description Parses pasted text into entries with offsets and links. Nothing is stored.
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Pasted text"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/questions/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Submit godoc
// @Summary     Archive pasted timestamps
// @Description Parses pasted text and stores one question per timestamp entry.
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Submission"
// @Success     200  {object} submitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     403  {object} response.Resp "Forbidden"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// Search godoc
// @Summary     Search archived questions
// @Description Substring search over speaker, questioner, date, summary and meeting. Newest first.
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       q      query string false "Search text"
// @Param       limit  query int    false "Page size"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Mine godoc
// @Summary     List the operator's own questions
// @Description Same filtering and paging as search, restricted to records the signed-in operator submitted.
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       q      query string false "Search text"
// @Param       limit  query int    false "Page size"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} searchResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions/mine [GET]
func (h *handler) Mine(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processMineReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()
	input.Author = sc.Email
	output, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// Detail godoc
// @Summary     Get question detail
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       id path string true "Question ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a question
// @Description Removes a question. Only the operator who archived it may delete it.
// @Tags        Question
// @Accept      json
// @Produce     json
// @Param       id path string true "Question ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/questions/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
