package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 4

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Objects     []Hittable // Leaf contents (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy over full 3D bounding boxes
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{}
	}

	// Build on a copy so the caller's ordering is left untouched
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return &BVH{Root: buildBVH(objectsCopy)}
}

// buildBVH recursively builds the BVH using median splits along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := objects[0].BoundingBox()
	for _, object := range objects[1:] {
		boundingBox = boundingBox.Union(object.BoundingBox())
	}

	if len(objects) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}

	axis := boundingBox.LongestAxis()
	minVal, maxVal := boundingBox.Min.Axis(axis), boundingBox.Max.Axis(axis)

	// No extent along this axis
	if maxVal <= minVal {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}

	left, right := partitionObjects(objects, axis, (minVal+maxVal)*0.5)

	// Ensure we don't create empty partitions
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Objects: objects}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(left),
		Right:       buildBVH(right),
	}
}

// partitionObjects splits objects by the center of their bounding box along axis
func partitionObjects(objects []Hittable, axis int, splitPos float64) ([]Hittable, []Hittable) {
	var left, right []Hittable
	for _, object := range objects {
		if object.BoundingBox().Center().Axis(axis) < splitPos {
			left = append(left, object)
		} else {
			right = append(right, object)
		}
	}
	return left, right
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	if bvh.Root == nil {
		return closest, false
	}
	hitAnything := bvh.hitNode(bvh.Root, ray, tMin, tMax, &closest)
	return closest, hitAnything
}

// hitNode recursively tests ray intersection with BVH nodes, narrowing tMax as hits are found
func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64, closest *material.HitRecord) bool {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	hitAnything := false
	closestSoFar := tMax

	if node.Objects != nil {
		for _, object := range node.Objects {
			if hit, ok := object.Hit(ray, tMin, closestSoFar); ok && (!hitAnything || hit.T < closestSoFar) {
				hitAnything = true
				closestSoFar = hit.T
				*closest = hit
			}
		}
		return hitAnything
	}

	if node.Left != nil && bvh.hitNode(node.Left, ray, tMin, closestSoFar, closest) {
		hitAnything = true
		closestSoFar = closest.T
	}

	var rightHit material.HitRecord
	if node.Right != nil && bvh.hitNode(node.Right, ray, tMin, closestSoFar, &rightHit) {
		if !hitAnything || rightHit.T < closestSoFar {
			hitAnything = true
			*closest = rightHit
		}
	}

	return hitAnything
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

// Depth returns the number of levels in the tree
func (bvh *BVH) Depth() int {
	var depth func(n *BVHNode) int
	depth = func(n *BVHNode) int {
		if n == nil {
			return 0
		}
		return 1 + max(depth(n.Left), depth(n.Right))
	}
	return depth(bvh.Root)
}
