package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/log"
	"github.com/df07/go-sphere-tracer/pkg/output"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// stdoutPath makes the render command stream a PPM image to stdout
const stdoutPath = "-"

// renderRequest holds everything the render command needs
type renderRequest struct {
	SceneName string
	Overrides core.SamplingConfig // Non-zero fields replace the scene's recommendation
	Options   renderer.Options
	Out       string
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	req, err := renderRequestFromContext(ctx)
	if err != nil {
		return err
	}

	if req.Out == stdoutPath {
		// Keep log lines out of the image stream
		log.SetSink(os.Stderr)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := runRender(sigCtx, req)
	if err != nil {
		return err
	}

	if req.Out == stdoutPath {
		if err := output.WritePPM(os.Stdout, frame); err != nil {
			return err
		}
	} else {
		if err := output.Save(req.Out, frame); err != nil {
			return err
		}
		logger.Noticef("render saved as %s", req.Out)
	}

	displayRenderStats(stats)
	return nil
}

func renderRequestFromContext(ctx *cli.Context) (renderRequest, error) {
	accel, err := scene.ParseAccel(ctx.String("accel"))
	if err != nil {
		return renderRequest{}, err
	}
	shading, err := renderer.ParseShading(ctx.String("shading"))
	if err != nil {
		return renderRequest{}, err
	}

	req := renderRequest{
		SceneName: ctx.String("scene"),
		Overrides: core.SamplingConfig{
			Width:           ctx.Int("width"),
			Height:          ctx.Int("height"),
			SamplesPerPixel: ctx.Int("spp"),
			MaxDepth:        ctx.Int("depth"),
			Gamma:           ctx.Float64("gamma"),
		},
		Options: renderer.Options{
			NumWorkers: ctx.Int("workers"),
			Seed:       ctx.Int64("seed"),
			Shading:    shading,
			Accel:      accel,
		},
		Out: ctx.String("out"),
	}
	if req.Out == "" {
		req.Out = defaultOutputPath(req.SceneName, time.Now())
	}
	return req, nil
}

// defaultOutputPath returns output/<scene>/render_<timestamp>.png
func defaultOutputPath(sceneName string, now time.Time) string {
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// runRender builds the requested scene, applies the overrides and renders it
func runRender(ctx context.Context, req renderRequest) (*renderer.Frame, renderer.RenderStats, error) {
	sc, err := scene.Create(req.SceneName, req.Options.Seed)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}

	config := core.MergeSamplingConfig(sc.SamplingConfig, req.Overrides)
	if config.Width > 0 && config.Height > 0 {
		if err := sc.SetAspectRatio(config.AspectRatio()); err != nil {
			return nil, renderer.RenderStats{}, err
		}
	}

	rt, err := renderer.NewRaytracer(sc, config, req.Options)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	rt.SetProgressReporter(&progressLogger{})

	logger.Noticef("rendering scene %q (%d spheres) at %dx%d with %d spp",
		sc.Name, sc.GetPrimitiveCount(), config.Width, config.Height, config.SamplesPerPixel)

	frame, err := rt.Render(ctx)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return frame, rt.Stats(), nil
}

// progressLogger logs a notice each time another tenth of the rows is done
type progressLogger struct {
	lastDecile int
}

func (p *progressLogger) RowCompleted(done, total int) {
	decile := done * 10 / total
	if decile <= p.lastDecile {
		return
	}
	p.lastDecile = decile
	logger.Noticef("%3d%% (%d/%d rows)", decile*10, done, total)
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	writeRenderStats(&buf, stats)
	logger.Noticef("render statistics\n%s", buf.String())
}

func writeRenderStats(w io.Writer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Size", "SPP", "Depth", "Workers", "Shading", "Accel", "Seed", "Samples/s", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.Workers),
		string(stats.Shading),
		stats.Accel.String(),
		fmt.Sprintf("%d", stats.Seed),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.RenderTime.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "", "TOTAL", fmt.Sprintf("%d samples", stats.TotalSamples)})
	table.Render()
}
