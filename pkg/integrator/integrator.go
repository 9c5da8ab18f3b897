package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// ShadowAcneEpsilon is the minimum hit distance used for every scene query
// so a scattered ray does not re-hit the surface it left.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray with at most depth bounces
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color
}

// Background is the vertical sky gradient seen by rays that escape the scene
type Background struct {
	Bottom core.Color // Color straight down
	Top    core.Color // Color straight up
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
		Top:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Evaluate blends Bottom and Top by the ray's vertical direction
func (b Background) Evaluate(ray core.Ray) core.Color {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
