package http

import (
	"github.com/gin-gonic/gin"

	"council-archive/pkg/response"
)

// GetMetadata godoc
// @Summary     Look up video metadata
// @Description Returns the title and publish time of a YouTube video.
// @Tags        Video
// @Produce     json
// @Param       url query string true "YouTube URL"
// @Success     200 {object} metadataResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Metadata unavailable"
// @Router      /api/v1/videos/metadata [GET]
func (h *handler) GetMetadata(c *gin.Context) {
	ctx := c.Request.Context()

	var req metadataReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetMetadata(ctx, req.URL)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetMetadata: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMetadataResp(output))
}
