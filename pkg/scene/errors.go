package scene

import "errors"

var (
	// ErrUnknownScene is returned by Create for names that are not registered.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrUnknownAccel is returned for unrecognized acceleration strategies.
	ErrUnknownAccel = errors.New("scene: unknown acceleration strategy")
)
