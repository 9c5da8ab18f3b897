package material

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Kind selects the scattering behaviour of a Material
type Kind int

const (
	// KindLambertian is a diffuse surface with optional partial absorption
	KindLambertian Kind = iota
	// KindMetal is a specular reflector with optional fuzz
	KindMetal
	// KindDielectric is a clear refractive surface such as glass
	KindDielectric
)

// String returns the lowercase name of the material kind
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Material describes how a surface scatters light. The set of behaviours is closed
// and selected by Kind; only the fields relevant to that kind are read.
// Materials are immutable after construction and shared by pointer between spheres.
type Material struct {
	Kind Kind

	Albedo             core.Color // Lambertian and metal tint
	ScatterProbability float64    // Lambertian only, in [0, 1]
	Fuzz               float64    // Metal only, in [0, 1]
	RefractionIndex    float64    // Dielectric only
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always opposing the ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether ray hit the front face
	Material  *Material   // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Scatter decides whether and how rayIn continues after striking the surface described by hit.
// A false result means the ray was absorbed.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// String describes the material and its parameters
func (m *Material) String() string {
	switch m.Kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v, p=%g)", m.Albedo, m.ScatterProbability)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ir=%g)", m.RefractionIndex)
	default:
		return m.Kind.String()
	}
}

// clamp01 limits v to [0, 1]
func clamp01(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0.0 {
		return 0.0
	}
	return v
}
