package renderer

import "errors"

var (
	// ErrInvalidConfig is returned when the sampling configuration or options cannot produce a frame.
	ErrInvalidConfig = errors.New("renderer: invalid render configuration")

	// ErrUnknownShading is returned for unrecognized shading modes.
	ErrUnknownShading = errors.New("renderer: unknown shading mode")
)
