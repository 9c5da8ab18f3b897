package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewNormalsScene creates a single sphere of radius 0.5 at (0, 0, -1) seen from the
// origin looking down -Z. It is meant for normal shading and for checking the camera.
func NewNormalsScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}

	samplingConfig := core.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 16,
		MaxDepth:        1,
		Gamma:           1.0,
	}

	s, err := newScene("normals", cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	if err := s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5), 1.0)); err != nil {
		return nil, err
	}
	return s, nil
}
