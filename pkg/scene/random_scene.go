package scene

import (
	"fmt"

	"github.com/dhconnelly/rtreego"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// footprint is a placed sphere, indexed by its X/Z extent
type footprint struct {
	center core.Vec3
	radius float64
	rect   rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (f *footprint) Bounds() rtreego.Rect {
	return f.rect
}

// layout tracks placed spheres so new ones can be rejected when they would intersect
type layout struct {
	tree *rtreego.Rtree
}

func newLayout() *layout {
	return &layout{tree: rtreego.NewTree(2, 25, 50)}
}

func footprintRect(center core.Vec3, radius float64) (rtreego.Rect, error) {
	return rtreego.NewRectFromPoints(
		rtreego.Point{center.X - radius, center.Z - radius},
		rtreego.Point{center.X + radius, center.Z + radius},
	)
}

// fits reports whether a sphere at center with the given radius is clear of every placed sphere
func (l *layout) fits(center core.Vec3, radius float64) (bool, error) {
	rect, err := footprintRect(center, radius)
	if err != nil {
		return false, err
	}
	for _, obj := range l.tree.SearchIntersect(rect) {
		placed := obj.(*footprint)
		if placed.center.Subtract(center).Length() < placed.radius+radius {
			return false, nil
		}
	}
	return true, nil
}

func (l *layout) place(center core.Vec3, radius float64) error {
	rect, err := footprintRect(center, radius)
	if err != nil {
		return err
	}
	l.tree.Insert(&footprint{center: center, radius: radius, rect: rect})
	return nil
}

// NewRandomScene creates the classic cover scene: a ground sphere, three large
// feature spheres and a jittered 22x22 field of small spheres with random
// materials. The same seed always produces the same scene.
func NewRandomScene(seed int64) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	samplingConfig := core.SamplingConfig{
		Width:           400,
		Height:          266,
		SamplesPerPixel: 500,
		MaxDepth:        50,
		Gamma:           1.8,
	}

	s, err := newScene("random", cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5), 1.0)
	if err := s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground); err != nil {
		return nil, err
	}

	// Feature spheres are placed first so the small ones keep clear of them
	features := []struct {
		center core.Vec3
		mat    *material.Material
	}{
		{core.NewVec3(0, 1, 0), material.NewDielectric(1.5)},
		{core.NewVec3(-4, 1, 0), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1), 1.0)},
		{core.NewVec3(4, 1, 0), material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)},
	}

	placed := newLayout()
	for _, f := range features {
		if err := placed.place(f.center, 1.0); err != nil {
			return nil, fmt.Errorf("scene random: %w", err)
		}
	}

	sampler := core.NewSeededSampler(seed)
	glass := material.NewDielectric(1.5)
	const smallRadius = 0.2

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallRadius,
				float64(b)+0.9*sampler.Get1D(),
			)

			ok, err := placed.fits(center, smallRadius)
			if err != nil {
				return nil, fmt.Errorf("scene random: %w", err)
			}
			if !ok {
				continue
			}

			var mat *material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomColor(sampler).MultiplyVec(core.RandomColor(sampler))
				mat = material.NewLambertian(albedo, 1.0)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1.0)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			default:
				mat = glass
			}

			if err := s.AddSphere(center, smallRadius, mat); err != nil {
				return nil, err
			}
			if err := placed.place(center, smallRadius); err != nil {
				return nil, fmt.Errorf("scene random: %w", err)
			}
		}
	}

	for _, f := range features {
		if err := s.AddSphere(f.center, 1.0, f.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}
