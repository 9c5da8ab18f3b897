package core

// Ray represents a half-line origin + t*direction with a unit-length direction.
// Always construct rays with NewRay so the inverse direction cache stays in sync.
type Ray struct {
	Origin    Point3
	Direction Vec3

	invDirection Vec3
}

// NewRay creates a ray, normalizing the direction and caching its inverse
// for slab tests. A zero direction component yields an infinite inverse.
func NewRay(origin Point3, direction Vec3) Ray {
	unit := direction.Normalize()
	return Ray{
		Origin:    origin,
		Direction: unit,
		invDirection: Vec3{
			X: 1.0 / unit.X,
			Y: 1.0 / unit.Y,
			Z: 1.0 / unit.Z,
		},
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// InvDirection returns the cached component-wise reciprocal of the direction
func (r Ray) InvDirection() Vec3 {
	return r.invDirection
}
