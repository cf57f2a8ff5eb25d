package video

// Metadata is what the archive keeps about a source video.
type Metadata struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"` // RFC3339
}
