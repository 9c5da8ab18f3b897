package geometry

import "errors"

var (
	// ErrZeroRadius is returned when a sphere is created with a zero radius.
	ErrZeroRadius = errors.New("geometry: sphere radius must be non-zero")

	// ErrNilMaterial is returned when a sphere is created without a material.
	ErrNilMaterial = errors.New("geometry: sphere material must not be nil")

	// ErrDegenerateCamera is returned when the camera basis cannot be derived.
	ErrDegenerateCamera = errors.New("geometry: degenerate camera configuration")
)
