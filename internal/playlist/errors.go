package playlist

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrSongNotFound    = errors.New("song not found")
	ErrMalformedRing   = errors.New("malformed ring")
)
