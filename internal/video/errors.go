package video

import "errors"

var (
	ErrInvalidVideoURL     = errors.New("invalid youtube url")
	ErrVideoNotFound       = errors.New("video not found")
	ErrMetadataUnavailable = errors.New("video metadata unavailable")
)
