package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// NewDielectric creates a new dielectric material (e.g. 1.5 for glass)
func NewDielectric(refractionIndex float64) *Material {
	return &Material{
		Kind:            KindDielectric,
		Albedo:          core.NewVec3(1, 1, 1),
		RefractionIndex: refractionIndex,
	}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Determine if we're entering or exiting the material
	refractionRatio := m.RefractionIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / m.RefractionIndex
	}

	unitDirection := rayIn.Direction.Normalize()

	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || m.reflects(cosTheta, refractionRatio, sampler) {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0), // clear glass does not tint
	}, true
}

// reflects makes the randomized Fresnel choice between reflection and refraction.
// Index-matched media have no interface, so nothing is reflected.
func (m *Material) reflects(cosTheta, refractionRatio float64, sampler core.Sampler) bool {
	if refractionRatio == 1.0 {
		return false
	}
	return Reflectance(cosTheta, refractionRatio) > sampler.Get1D()
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
