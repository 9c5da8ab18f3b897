package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that bounds nothing. Its union with any box is that box.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method.
// The interval (tMin, tMax) is narrowed per axis with the ray's cached inverse direction.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	inv := ray.InvDirection()
	for axis := 0; axis < 3; axis++ {
		lo, hi, ok := SlabInterval(aabb.Min.Axis(axis), aabb.Max.Axis(axis),
			ray.Origin.Axis(axis), ray.Direction.Axis(axis), inv.Axis(axis))
		if !ok {
			return false
		}

		tMin = math.Max(tMin, lo)
		tMax = math.Min(tMax, hi)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// SlabInterval returns the parameter interval over which a ray with the given
// origin, direction and inverse direction component lies within [min, max] on one axis.
// A ray parallel to the slab yields (-Inf, +Inf) when its origin is inside and
// ok=false otherwise, which keeps 0*Inf from turning into NaN.
func SlabInterval(min, max, origin, direction, invDirection float64) (lo, hi float64, ok bool) {
	if direction == 0 {
		if origin < min || origin > max {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}

	t1 := (min - origin) * invDirection
	t2 := (max - origin) * invDirection
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	min := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	max := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0 // X axis
	}
	if size.Y > size.Z {
		return 1 // Y axis
	}
	return 2 // Z axis
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return other.Min.X >= aabb.Min.X && other.Max.X <= aabb.Max.X &&
		other.Min.Y >= aabb.Min.Y && other.Max.Y <= aabb.Max.Y &&
		other.Min.Z >= aabb.Min.Z && other.Max.Z <= aabb.Max.Z
}
