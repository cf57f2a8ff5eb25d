package http

import "council-archive/internal/video"

type metadataReq struct {
	URL string `form:"url" binding:"required"`
}

type metadataResp struct {
	VideoID       string `json:"video_id"`
	Title         string `json:"title"`
	PublishedAt   string `json:"published_at"`
	PublishedDate string `json:"published_date"`
}

func (h *handler) newMetadataResp(m video.Metadata) metadataResp {
	return metadataResp{
		VideoID:       m.VideoID,
		Title:         m.Title,
		PublishedAt:   m.PublishedAt,
		PublishedDate: h.dateMath.DateOf(m.PublishedAt),
	}
}
