package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates a default scene with spheres, ground, and camera
func NewDefaultScene() (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 0.75, 2), // Position camera higher and farther back
		LookAt:        core.NewVec3(0, 0.5, -1), // Look at the sphere center
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.05,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	samplingConfig := core.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 200,
		MaxDepth:        50,
		Gamma:           2.0,
	}

	s, err := newScene("default", cameraConfig, samplingConfig)
	if err != nil {
		return nil, err
	}

	// Create materials
	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6), 1.0)
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5), 1.0)
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2), 1.0)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	spheres := []struct {
		center core.Vec3
		radius float64
		mat    *material.Material
	}{
		{core.NewVec3(0, -1000, -1), 1000, lambertianGreen}, // ground
		{core.NewVec3(0, 0.5, -1), 0.5, lambertianRed},
		{core.NewVec3(-1, 0.5, -1), 0.5, metalSilver},
		{core.NewVec3(1, 0.5, -1), 0.5, metalGold},
		{core.NewVec3(0.5, 0.25, -0.5), 0.25, materialGlass},

		// Hollow glass sphere with blue sphere inside
		{core.NewVec3(-0.5, 0.25, -0.5), 0.25, materialGlass},
		{core.NewVec3(-0.5, 0.25, -0.5), -0.24, materialGlass},
		{core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue},
	}

	for _, sp := range spheres {
		if err := s.AddSphere(sp.center, sp.radius, sp.mat); err != nil {
			return nil, err
		}
	}

	return s, nil
}
