package youtube

import "errors"

// Video is the subset of YouTube video metadata the archive keeps.
type Video struct {
	ID           string
	Title        string
	PublishedAt  string // RFC3339, as returned by the Data API
	ChannelTitle string
}

var (
	ErrVideoNotFound  = errors.New("youtube: video not found")
	ErrInvalidVideoID = errors.New("youtube: invalid video id")
)
