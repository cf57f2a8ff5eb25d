package youtube

import "context"

// IYouTube is the metadata lookup used by the video domain.
type IYouTube interface {
	GetVideo(ctx context.Context, videoID string) (*Video, error)
}
