package output

import "errors"

var (
	// ErrUnsupportedFormat is returned by Save for file extensions other than .ppm and .png.
	ErrUnsupportedFormat = errors.New("output: unsupported image format")

	// ErrEmptyFrame is returned when asked to write a nil or zero-sized frame.
	ErrEmptyFrame = errors.New("output: empty frame")
)
