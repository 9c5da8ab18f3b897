package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// NormalIntegrator shades each surface by its normal mapped into [0, 1].
// Materials are ignored and nothing bounces.
type NormalIntegrator struct {
	background Background
}

// NewNormalIntegrator creates a normal visualization integrator
func NewNormalIntegrator(background Background) *NormalIntegrator {
	return &NormalIntegrator{background: background}
}

// RayColor returns 0.5*(normal + 1) for a hit and the background otherwise
func (n *NormalIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return n.background.Evaluate(ray)
	}
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}
