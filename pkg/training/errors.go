package training

import "errors"

var (
	// ErrNegativeCount indicates a request for fewer than zero lines.
	ErrNegativeCount = errors.New("training: line count must not be negative")
	// ErrInvalidTrack indicates a brush track without positive width.
	ErrInvalidTrack = errors.New("training: brush track width must be positive")
)
