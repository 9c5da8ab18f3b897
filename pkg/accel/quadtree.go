// Package accel contains spatial indices used to narrow the set of primitives
// a ray has to be tested against.
package accel

import (
	"math"
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

const (
	// DefaultGridScale is the number of grid cells per world unit that boxes are snapped to
	DefaultGridScale = 10.0

	// DefaultMaxDepth bounds how many times the region is subdivided
	DefaultMaxDepth = 8

	// maxItemsPerNode is the leaf size that triggers a split
	maxItemsPerNode = 4
)

// rect is an axis-aligned rectangle in the X/Z plane
type rect struct {
	minX, minZ float64
	maxX, maxZ float64
}

func (r rect) contains(other rect) bool {
	return other.minX >= r.minX && other.maxX <= r.maxX &&
		other.minZ >= r.minZ && other.maxZ <= r.maxZ
}

// quadrants splits r into four equally sized children
func (r rect) quadrants() [4]rect {
	midX := (r.minX + r.maxX) * 0.5
	midZ := (r.minZ + r.maxZ) * 0.5
	return [4]rect{
		{r.minX, r.minZ, midX, midZ},
		{midX, r.minZ, r.maxX, midZ},
		{r.minX, midZ, midX, r.maxZ},
		{midX, midZ, r.maxX, r.maxZ},
	}
}

// hit reports whether the ray passes over r for some t in (tMin, tMax].
// Only the X and Z slabs are tested.
func (r rect) hit(ray core.Ray, tMin, tMax float64) bool {
	inv := ray.InvDirection()

	lo, hi, ok := core.SlabInterval(r.minX, r.maxX, ray.Origin.X, ray.Direction.X, inv.X)
	if !ok {
		return false
	}
	loZ, hiZ, ok := core.SlabInterval(r.minZ, r.maxZ, ray.Origin.Z, ray.Direction.Z, inv.Z)
	if !ok {
		return false
	}

	lo = math.Max(math.Max(lo, loZ), tMin)
	hi = math.Min(math.Min(hi, hiZ), tMax)

	// Empty, or entirely behind the origin
	return lo <= hi && hi >= 0
}

type entry struct {
	id     int
	bounds rect
}

type node struct {
	bounds   rect
	depth    int
	entries  []entry
	children []*node
}

// QuadTree indexes the X/Z footprint of bounding boxes. Y extents are ignored, so
// vertically stacked objects are never separated; that only costs extra candidates.
//
// Inserts must not run concurrently with queries. Once populated the tree is
// read-only and safe to query from any number of goroutines.
type QuadTree struct {
	scale    float64
	maxDepth int
	root     *node
	overflow []entry // boxes that do not fit inside the root region
	bounds   core.AABB
	count    int
}

// NewQuadTree creates an index covering the X/Z footprint of region.
// Boxes inserted outside the region are still found, just without pruning.
func NewQuadTree(region core.AABB, scale float64, maxDepth int) *QuadTree {
	if scale <= 0 {
		scale = DefaultGridScale
	}
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}

	qt := &QuadTree{scale: scale, maxDepth: maxDepth}
	qt.root = &node{bounds: qt.snap(region)}
	return qt
}

// snap expands the X/Z extent of box outward to the grid. The result always
// contains the original extent, even when rounding lands on the wrong cell edge.
func (qt *QuadTree) snap(box core.AABB) rect {
	return rect{
		minX: math.Min(box.Min.X, math.Floor(box.Min.X*qt.scale)/qt.scale),
		minZ: math.Min(box.Min.Z, math.Floor(box.Min.Z*qt.scale)/qt.scale),
		maxX: math.Max(box.Max.X, math.Ceil(box.Max.X*qt.scale)/qt.scale),
		maxZ: math.Max(box.Max.Z, math.Ceil(box.Max.Z*qt.scale)/qt.scale),
	}
}

// Insert adds the box for primitive id to the index
func (qt *QuadTree) Insert(id int, box core.AABB) {
	if qt.count == 0 {
		qt.bounds = box
	} else {
		qt.bounds = qt.bounds.Union(box)
	}
	qt.count++

	e := entry{id: id, bounds: qt.snap(box)}
	if !qt.root.bounds.contains(e.bounds) {
		qt.overflow = append(qt.overflow, e)
		return
	}
	qt.insert(qt.root, e)
}

func (qt *QuadTree) insert(n *node, e entry) {
	for n.children != nil {
		child := n.childFor(e.bounds)
		if child == nil {
			break
		}
		n = child
	}

	n.entries = append(n.entries, e)
	if n.children == nil && len(n.entries) > maxItemsPerNode && qt.canSplit(n) {
		qt.split(n)
	}
}

// canSplit reports whether n is allowed to subdivide further
func (qt *QuadTree) canSplit(n *node) bool {
	if n.depth >= qt.maxDepth {
		return false
	}
	// Children narrower than one grid cell can never hold a snapped box
	cell := 2.0 / qt.scale
	return n.bounds.maxX-n.bounds.minX >= cell && n.bounds.maxZ-n.bounds.minZ >= cell
}

func (qt *QuadTree) split(n *node) {
	quads := n.bounds.quadrants()
	n.children = make([]*node, len(quads))
	for i, q := range quads {
		n.children[i] = &node{bounds: q, depth: n.depth + 1}
	}

	// Push down everything that fits entirely inside one child
	kept := n.entries[:0]
	for _, e := range n.entries {
		if child := n.childFor(e.bounds); child != nil {
			qt.insert(child, e)
		} else {
			kept = append(kept, e)
		}
	}
	n.entries = kept
}

// childFor returns the child that fully contains r, or nil
func (n *node) childFor(r rect) *node {
	for _, child := range n.children {
		if child.bounds.contains(r) {
			return child
		}
	}
	return nil
}

// Candidates returns the ids, in ascending order, of every inserted box whose X/Z
// footprint the ray crosses for some t in (tMin, tMax]. Every primitive the ray
// actually intersects in that range is included.
func (qt *QuadTree) Candidates(ray core.Ray, tMin, tMax float64) []int {
	var ids []int
	for _, e := range qt.overflow {
		if e.bounds.hit(ray, tMin, tMax) {
			ids = append(ids, e.id)
		}
	}
	ids = qt.collect(qt.root, ray, tMin, tMax, ids)
	sort.Ints(ids)
	return ids
}

func (qt *QuadTree) collect(n *node, ray core.Ray, tMin, tMax float64, ids []int) []int {
	if !n.bounds.hit(ray, tMin, tMax) {
		return ids
	}
	for _, e := range n.entries {
		if e.bounds.hit(ray, tMin, tMax) {
			ids = append(ids, e.id)
		}
	}
	for _, child := range n.children {
		ids = qt.collect(child, ray, tMin, tMax, ids)
	}
	return ids
}

// Bounds returns the union of every inserted box
func (qt *QuadTree) Bounds() core.AABB {
	return qt.bounds
}

// Len returns the number of inserted boxes
func (qt *QuadTree) Len() int {
	return qt.count
}

// Stats describes the shape of the tree
type Stats struct {
	Nodes    int
	MaxDepth int
	Overflow int
}

// Stats walks the tree and reports its size
func (qt *QuadTree) Stats() Stats {
	stats := Stats{Overflow: len(qt.overflow)}
	var walk func(n *node)
	walk = func(n *node) {
		stats.Nodes++
		if n.depth > stats.MaxDepth {
			stats.MaxDepth = n.depth
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(qt.root)
	return stats
}
