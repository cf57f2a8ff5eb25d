package repository

import "errors"

var (
	ErrFailedToGet = errors.New("failed to get cached metadata")
	ErrFailedToSet = errors.New("failed to cache metadata")
)
