package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

func TestParseAccel(t *testing.T) {
	tests := []struct {
		input    string
		expected Accel
		wantErr  bool
	}{
		{"none", AccelNone, false},
		{"quadtree", AccelQuadTree, false},
		{"BVH", AccelBVH, false},
		{"octree", AccelNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccel(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAccel) {
					t.Errorf("Expected ErrUnknownAccel, got %v", err)
				}
				return
			}
			if err != nil || got != tt.expected {
				t.Errorf("Expected %v, got %v (err %v)", tt.expected, got, err)
			}
			if got.String() != accelNames[tt.expected] {
				t.Errorf("Round trip failed: %s", got.String())
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	scenes := List()
	if len(scenes) != len(builders) {
		t.Fatalf("Expected %d scenes, got %d", len(builders), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].Name >= scenes[i].Name {
			t.Errorf("Scene list not sorted: %v", scenes)
		}
	}

	for _, info := range scenes {
		t.Run(info.Name, func(t *testing.T) {
			s, err := Create(info.Name, 42)
			if err != nil {
				t.Fatalf("Create(%s): %v", info.Name, err)
			}
			if s.Camera == nil {
				t.Error("Scene has no camera")
			}
			if s.GetPrimitiveCount() == 0 {
				t.Error("Scene has no spheres")
			}
			if s.SamplingConfig.Width <= 0 || s.SamplingConfig.Height <= 0 || s.SamplingConfig.SamplesPerPixel <= 0 {
				t.Errorf("Invalid sampling config %+v", s.SamplingConfig)
			}
		})
	}

	if _, err := Create("cornell", 0); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRandomScene_Deterministic(t *testing.T) {
	a, err := NewRandomScene(7)
	if err != nil {
		t.Fatalf("NewRandomScene: %v", err)
	}
	b, err := NewRandomScene(7)
	if err != nil {
		t.Fatalf("NewRandomScene: %v", err)
	}

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Sphere counts differ: %d vs %d", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	for i := range a.Spheres {
		sa, sb := a.Spheres[i], b.Spheres[i]
		if !sa.Center.Equals(sb.Center) || sa.Radius != sb.Radius || sa.Material.String() != sb.Material.String() {
			t.Fatalf("Sphere %d differs: %v vs %v", i, sa.Center, sb.Center)
		}
	}
}

func TestRandomScene_Layout(t *testing.T) {
	s, err := NewRandomScene(42)
	if err != nil {
		t.Fatalf("NewRandomScene: %v", err)
	}

	// Ground + up to 484 small spheres + 3 features
	count := s.GetPrimitiveCount()
	if count < 300 || count > 488 {
		t.Errorf("Unexpected sphere count %d", count)
	}

	ground := s.Spheres[0]
	if ground.Radius != 1000 || !ground.Center.Equals(core.NewVec3(0, -1000, 0)) {
		t.Errorf("First sphere should be the ground, got %v r=%g", ground.Center, ground.Radius)
	}

	kinds := map[material.Kind]int{}
	others := s.Spheres[1:]
	for i, a := range others {
		kinds[a.Material.Kind]++
		for _, b := range others[i+1:] {
			if a.Center.Subtract(b.Center).Length() < a.Radius+b.Radius-1e-9 {
				t.Fatalf("Spheres at %v and %v overlap", a.Center, b.Center)
			}
		}
	}

	for _, kind := range []material.Kind{material.KindLambertian, material.KindMetal, material.KindDielectric} {
		if kinds[kind] == 0 {
			t.Errorf("Expected at least one %v sphere", kind)
		}
	}
	if kinds[material.KindLambertian] < kinds[material.KindMetal] {
		t.Errorf("Diffuse spheres should dominate, got %v", kinds)
	}

	// Small spheres reuse one glass material
	if s.GetMaterialCount() >= count {
		t.Errorf("Expected shared materials, got %d materials for %d spheres", s.GetMaterialCount(), count)
	}
}

func TestScene_WorldStrategiesAgree(t *testing.T) {
	s, err := NewRandomScene(3)
	if err != nil {
		t.Fatalf("NewRandomScene: %v", err)
	}

	worlds := map[Accel]geometry.Hittable{}
	for _, strategy := range []Accel{AccelNone, AccelQuadTree, AccelBVH} {
		world, err := s.World(strategy)
		if err != nil {
			t.Fatalf("World(%v): %v", strategy, err)
		}
		worlds[strategy] = world
	}

	sampler := core.NewSeededSampler(11)
	for i := 0; i < 3000; i++ {
		u, v := sampler.Get2D()
		ray := s.Camera.GetRay(u, v, sampler)

		expected, expectedHit := worlds[AccelNone].Hit(ray, 0.001, math.Inf(1))
		for _, strategy := range []Accel{AccelQuadTree, AccelBVH} {
			got, gotHit := worlds[strategy].Hit(ray, 0.001, math.Inf(1))
			if gotHit != expectedHit || (gotHit && (got.T != expected.T || got.Material != expected.Material)) {
				t.Fatalf("Ray %d: %v disagrees with linear scan", i, strategy)
			}
		}
	}

	if _, err := s.World(Accel(99)); !errors.Is(err, ErrUnknownAccel) {
		t.Errorf("Expected ErrUnknownAccel, got %v", err)
	}
}

func TestScene_SetAspectRatio(t *testing.T) {
	s, err := NewNormalsScene()
	if err != nil {
		t.Fatalf("NewNormalsScene: %v", err)
	}
	if err := s.SetAspectRatio(1.0); err != nil {
		t.Fatalf("SetAspectRatio: %v", err)
	}
	if s.CameraConfig.AspectRatio != 1.0 {
		t.Errorf("Expected aspect ratio 1, got %f", s.CameraConfig.AspectRatio)
	}
	if err := s.SetAspectRatio(0); !errors.Is(err, geometry.ErrDegenerateCamera) {
		t.Errorf("Expected ErrDegenerateCamera, got %v", err)
	}
}

func TestOklchToRGB_InRange(t *testing.T) {
	for h := 0.0; h < 360; h += 30 {
		c := oklchToRGB(0.65, 0.25, h)
		for axis := 0; axis < 3; axis++ {
			if v := c.Axis(axis); v < 0 || v > 1 {
				t.Fatalf("Channel %d out of range for hue %g: %f", axis, h, v)
			}
		}
	}
}
