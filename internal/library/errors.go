package library

import "errors"

var (
	ErrInvalidIndex = errors.New("invalid playlist index")
	ErrNilPlaylist  = errors.New("nil playlist")
)
