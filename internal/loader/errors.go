package loader

import "errors"

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnsupported     = errors.New("unsupported source")
)
