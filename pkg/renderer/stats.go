package renderer

import (
	"time"

	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int64         // Total number of camera rays traced
	Workers         int           // Number of concurrent row workers
	Seed            int64         // Base seed actually used
	Shading         Shading       // Integrator used
	Accel           scene.Accel   // Hit-test strategy used
	RenderTime      time.Duration // Wall clock time spent in Render
}

// SamplesPerSecond returns camera rays traced per second of wall time
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}
