package scene

import (
	"fmt"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/accel"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Accel selects how the world is searched for ray hits
type Accel int

const (
	// AccelNone tests every sphere for every ray
	AccelNone Accel = iota
	// AccelQuadTree prunes spheres with an X/Z quadtree over their footprints
	AccelQuadTree
	// AccelBVH uses a bounding volume hierarchy over full 3D boxes
	AccelBVH
)

var accelNames = map[Accel]string{
	AccelNone:     "none",
	AccelQuadTree: "quadtree",
	AccelBVH:      "bvh",
}

// String returns the name accepted by ParseAccel
func (a Accel) String() string {
	if name, ok := accelNames[a]; ok {
		return name
	}
	return fmt.Sprintf("accel(%d)", int(a))
}

// ParseAccel converts a strategy name into an Accel
func ParseAccel(name string) (Accel, error) {
	for strategy, strategyName := range accelNames {
		if strings.EqualFold(name, strategyName) {
			return strategy, nil
		}
	}
	return AccelNone, fmt.Errorf("%q: %w", name, ErrUnknownAccel)
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	Background     integrator.Background
	SamplingConfig core.SamplingConfig // Recommended settings for this scene
	Spheres        []*geometry.Sphere  // Objects in the scene, in id order
}

// newScene creates an empty scene with a camera built from cameraConfig
func newScene(name string, cameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig) (*Scene, error) {
	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		Background:     integrator.DefaultBackground(),
		SamplingConfig: samplingConfig,
	}, nil
}

// AddSphere creates a sphere and adds it to the scene
func (s *Scene) AddSphere(center core.Point3, radius float64, mat *material.Material) error {
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Spheres = append(s.Spheres, sphere)
	return nil
}

// SetAspectRatio rebuilds the camera for a new image shape
func (s *Scene) SetAspectRatio(aspectRatio float64) error {
	config := s.CameraConfig
	config.AspectRatio = aspectRatio

	camera, err := geometry.NewCamera(config)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Camera = camera
	s.CameraConfig = config
	return nil
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}

// GetMaterialCount returns the number of distinct materials shared by the spheres
func (s *Scene) GetMaterialCount() int {
	seen := make(map[*material.Material]struct{})
	for _, sphere := range s.Spheres {
		seen[sphere.Material] = struct{}{}
	}
	return len(seen)
}

// World assembles the spheres into a hittable using the requested strategy.
// Sphere ids match their position in Spheres for every strategy.
func (s *Scene) World(strategy Accel) (geometry.Hittable, error) {
	switch strategy {
	case AccelNone:
		list := geometry.NewHittableList()
		for _, sphere := range s.Spheres {
			list.Add(sphere)
		}
		return list, nil

	case AccelQuadTree:
		index := accel.NewQuadTree(s.bounds(), accel.DefaultGridScale, accel.DefaultMaxDepth)
		list := geometry.NewIndexedHittableList(index)
		for _, sphere := range s.Spheres {
			list.Add(sphere)
		}
		return list, nil

	case AccelBVH:
		objects := make([]geometry.Hittable, len(s.Spheres))
		for i, sphere := range s.Spheres {
			objects[i] = sphere
		}
		return geometry.NewBVH(objects), nil

	default:
		return nil, fmt.Errorf("%v: %w", strategy, ErrUnknownAccel)
	}
}

// bounds returns the union of every sphere's bounding box
func (s *Scene) bounds() core.AABB {
	if len(s.Spheres) == 0 {
		return core.AABB{}
	}
	box := s.Spheres[0].BoundingBox()
	for _, sphere := range s.Spheres[1:] {
		box = box.Union(sphere.BoundingBox())
	}
	return box
}
