package renderer

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/log"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Shading selects the integrator used for every camera ray
type Shading string

const (
	// ShadingPath traces full material paths
	ShadingPath Shading = "path"
	// ShadingNormals colors each pixel by the normal of the first hit
	ShadingNormals Shading = "normals"
)

// ParseShading converts a shading name into a Shading, case-insensitively
func ParseShading(name string) (Shading, error) {
	switch strings.ToLower(name) {
	case "", string(ShadingPath):
		return ShadingPath, nil
	case string(ShadingNormals):
		return ShadingNormals, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownShading)
}

// Options control how rows are scheduled and sampled
type Options struct {
	NumWorkers int         // Concurrent rows; 0 means runtime.NumCPU()
	Seed       int64       // Base seed, row y samples with Seed+y; 0 picks one from the clock
	Shading    Shading     // Integrator to use; empty means ShadingPath
	Accel      scene.Accel // Hit-test strategy for the world
}

// Raytracer renders a scene into a Frame, one row per task
type Raytracer struct {
	scene      *scene.Scene
	world      geometry.Hittable
	config     core.SamplingConfig
	options    Options
	integrator integrator.Integrator
	progress   ProgressReporter
	logger     log.Logger
	stats      RenderStats
}

// NewRaytracer validates config and options and builds the world for sc
func NewRaytracer(sc *scene.Scene, config core.SamplingConfig, options Options) (*Raytracer, error) {
	if sc == nil || sc.Camera == nil {
		return nil, fmt.Errorf("scene has no camera: %w", ErrInvalidConfig)
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	if options.NumWorkers < 0 {
		return nil, fmt.Errorf("workers %d: %w", options.NumWorkers, ErrInvalidConfig)
	}
	if options.NumWorkers == 0 {
		options.NumWorkers = runtime.NumCPU()
	}

	shading, err := ParseShading(string(options.Shading))
	if err != nil {
		return nil, err
	}
	options.Shading = shading

	world, err := sc.World(options.Accel)
	if err != nil {
		return nil, fmt.Errorf("building world for scene %q: %w", sc.Name, err)
	}

	var integ integrator.Integrator
	switch shading {
	case ShadingNormals:
		integ = integrator.NewNormalIntegrator(sc.Background)
	default:
		integ = integrator.NewPathTracingIntegrator(sc.Background)
	}

	return &Raytracer{
		scene:      sc,
		world:      world,
		config:     config,
		options:    options,
		integrator: integ,
		progress:   noProgress{},
		logger:     log.New("renderer"),
	}, nil
}

func validateConfig(config core.SamplingConfig) error {
	switch {
	case config.Width <= 0 || config.Height <= 0:
		return fmt.Errorf("image size %dx%d: %w", config.Width, config.Height, ErrInvalidConfig)
	case config.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel %d: %w", config.SamplesPerPixel, ErrInvalidConfig)
	case config.MaxDepth <= 0:
		return fmt.Errorf("max depth %d: %w", config.MaxDepth, ErrInvalidConfig)
	case config.Gamma < 0:
		return fmt.Errorf("gamma %g: %w", config.Gamma, ErrInvalidConfig)
	}
	return nil
}

// SetProgressReporter installs a reporter called after every finished row
func (rt *Raytracer) SetProgressReporter(reporter ProgressReporter) {
	if reporter == nil {
		reporter = noProgress{}
	}
	rt.progress = reporter
}

// SetLogger replaces the renderer's logger
func (rt *Raytracer) SetLogger(logger log.Logger) {
	if logger != nil {
		rt.logger = logger
	}
}

// Stats returns statistics for the last completed Render call
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}

// Render traces every pixel and returns the quantized frame. Rows are rendered
// concurrently, each with its own sampler, so the output for a fixed non-zero
// seed does not depend on the number of workers. A cancelled context stops
// scheduling new rows and Render returns the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	seed := rt.options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rt.logger.Infof("rendering %q at %dx%d, %d spp, depth %d, %d workers, %s shading, %s accel",
		rt.scene.Name, width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		rt.options.NumWorkers, rt.options.Shading, rt.options.Accel)

	frame := NewFrame(width, height)

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.options.NumWorkers)

	for y := 0; y < height; y++ {
		if gctx.Err() != nil {
			break
		}

		y := y // per-iteration copy (go.mod targets go 1.21)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			sampler := core.NewSeededSampler(seed + int64(y))
			rt.renderRow(y, frame.Row(y), sampler)

			mu.Lock()
			done++
			rt.progress.RowCompleted(done, height)
			rt.logger.Debugf("row %d finished (%d/%d)", y, done, height)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		rt.logger.Warningf("render of %q stopped after %d of %d rows: %v", rt.scene.Name, done, height, err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rt.stats = RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		TotalPixels:     width * height,
		TotalSamples:    int64(width) * int64(height) * int64(rt.config.SamplesPerPixel),
		Workers:         rt.options.NumWorkers,
		Seed:            seed,
		Shading:         rt.options.Shading,
		Accel:           rt.options.Accel,
		RenderTime:      time.Since(start),
	}

	rt.logger.Infof("rendered %q in %v", rt.scene.Name, rt.stats.RenderTime)
	return frame, nil
}

// renderRow fills row y (counted from the top) of the frame
func (rt *Raytracer) renderRow(y int, row []RGB8, sampler core.Sampler) {
	width, height := rt.config.Width, rt.config.Height
	j := height - 1 - y

	uDiv := pixelDivisor(width)
	vDiv := pixelDivisor(height)

	for i := range row {
		var sum core.Color
		for s := 0; s < rt.config.SamplesPerPixel; s++ {
			du, dv := sampler.Get2D()
			u := (float64(i) + du) / uDiv
			v := (float64(j) + dv) / vDiv

			ray := rt.scene.Camera.GetRay(u, v, sampler)
			sum = sum.Add(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
		}
		row[i] = QuantizeColor(sum, rt.config.SamplesPerPixel, rt.config.Gamma)
	}
}

// pixelDivisor maps pixel indices onto [0, 1]; a single-pixel dimension uses 1
func pixelDivisor(n int) float64 {
	if n <= 1 {
		return 1
	}
	return float64(n - 1)
}
