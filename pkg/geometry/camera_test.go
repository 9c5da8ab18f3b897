package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

func TestNewCamera_Degenerate(t *testing.T) {
	valid := CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 1,
	}

	tests := []struct {
		name   string
		modify func(c *CameraConfig)
	}{
		{"LookFrom equals LookAt", func(c *CameraConfig) { c.LookAt = c.LookFrom }},
		{"Up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }},
		{"Zero up", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 0) }},
		{"Zero field of view", func(c *CameraConfig) { c.VFov = 0 }},
		{"Negative aspect ratio", func(c *CameraConfig) { c.AspectRatio = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.modify(&config)
			if _, err := NewCamera(config); !errors.Is(err, ErrDegenerateCamera) {
				t.Errorf("Expected ErrDegenerateCamera, got %v", err)
			}
		})
	}

	if _, err := NewCamera(valid); err != nil {
		t.Errorf("Valid config rejected: %v", err)
	}
}

func TestCamera_GetRay_Pinhole(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"Center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"Lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"Upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"Top middle", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if !ray.Origin.Equals(core.NewVec3(0, 0, 0)) {
				t.Errorf("Pinhole ray should start at the camera, got %v", ray.Origin)
			}
			expected := tt.expected.Normalize()
			if ray.Direction.Subtract(expected).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
		})
	}
}

func TestCamera_GetRay_DefocusStaysFocused(t *testing.T) {
	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)
	camera, err := NewCamera(CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      0.5,
		FocusDistance: 0, // auto: |lookFrom - lookAt|
	})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	focus := lookFrom.Subtract(lookAt).Length()
	moved := false

	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		offset := ray.Origin.Subtract(lookFrom).Length()
		if offset > 0.25+1e-12 {
			t.Fatalf("Lens offset %f exceeds aperture radius", offset)
		}
		if offset > 0 {
			moved = true
		}

		// Every ray through the viewport center passes through the focus point
		p := ray.At(ray.Origin.Subtract(lookAt).Length())
		if p.Subtract(lookAt).Length() > 1e-6*focus {
			t.Fatalf("Ray %d misses the focus point: %v", i, p)
		}
	}

	if !moved {
		t.Error("Expected aperture to jitter ray origins")
	}
}

func TestCamera_Forward(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -4),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        45,
		AspectRatio: 1,
	})
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	if math.Abs(camera.Forward().Dot(core.NewVec3(0, 0, -1))-1) > 1e-12 {
		t.Errorf("Expected forward (0, 0, -1), got %v", camera.Forward())
	}
}
