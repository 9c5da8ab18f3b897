package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/accel"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// HittableList is an aggregate of hittable objects. Objects are identified by the
// order they were added in. With an index attached, only the candidates the index
// returns are tested; without one, every object is.
type HittableList struct {
	objects []Hittable
	index   *accel.QuadTree
	bounds  core.AABB
}

// NewHittableList creates an empty list that scans every object per ray
func NewHittableList() *HittableList {
	return &HittableList{bounds: core.EmptyAABB()}
}

// NewIndexedHittableList creates an empty list that registers each added object
// with index and consults it at query time
func NewIndexedHittableList(index *accel.QuadTree) *HittableList {
	return &HittableList{index: index, bounds: core.EmptyAABB()}
}

// Add appends an object and returns its id
func (l *HittableList) Add(object Hittable) int {
	id := len(l.objects)
	box := object.BoundingBox()
	l.bounds = l.bounds.Union(box)

	if l.index != nil {
		l.index.Insert(id, box)
	}
	l.objects = append(l.objects, object)
	return id
}

// Objects returns the objects in id order
func (l *HittableList) Objects() []Hittable {
	return l.objects
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Indexed reports whether the list uses a spatial index
func (l *HittableList) Indexed() bool {
	return l.index != nil
}

// Hit returns the closest hit over all children. Equal distances resolve to the
// object added first.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := tMax

	test := func(object Hittable) {
		hit, ok := object.Hit(ray, tMin, closestSoFar)
		if ok && (!hitAnything || hit.T < closestSoFar) {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	if l.index == nil {
		for _, object := range l.objects {
			test(object)
		}
		return closest, hitAnything
	}

	for _, id := range l.index.Candidates(ray, tMin, tMax) {
		test(l.objects[id])
	}
	return closest, hitAnything
}

// BoundingBox returns the union of the children's bounding boxes.
// An empty list returns core.EmptyAABB.
func (l *HittableList) BoundingBox() core.AABB {
	return l.bounds
}
