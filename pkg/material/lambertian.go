package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NewLambertian creates a diffuse material. Each hit survives with probability
// scatterProbability (clamped to [0, 1]); surviving paths are weighted by its inverse.
func NewLambertian(albedo core.Color, scatterProbability float64) *Material {
	return &Material{
		Kind:               KindLambertian,
		Albedo:             albedo,
		ScatterProbability: clamp01(scatterProbability),
	}
}

func (m *Material) scatterLambertian(hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Russian roulette absorption
	if m.ScatterProbability <= 0 || sampler.Get1D() > m.ScatterProbability {
		return ScatterResult{}, false
	}

	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo.Multiply(1.0 / m.ScatterProbability),
	}, true
}
