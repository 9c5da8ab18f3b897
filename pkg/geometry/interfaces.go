package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Hittable is anything a ray can be intersected with. The set of implementations
// is closed: *Sphere, *HittableList and *BVH.
type Hittable interface {
	// Hit returns the closest intersection with t in (tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
	BoundingBox() core.AABB

	hittable()
}

func (*Sphere) hittable()       {}
func (*HittableList) hittable() {}
func (*BVH) hittable()          {}
