package main

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-tracer/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sphere-tracer"
	app.Usage = "render sphere scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame",
			Description: `
Render one of the built-in scenes. Sampling flags left at zero fall back to the
scene's recommended settings. The image format follows the output extension
(.png or .ppm); use "-o -" to stream a P3 PPM image to stdout.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray bounce depth",
				},
				cli.Float64Flag{
					Name:  "gamma",
					Usage: "output gamma; 1 disables correction",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed for scene generation and sampling; 0 picks a sampling seed from the clock",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of rows rendered concurrently; 0 uses every CPU",
				},
				cli.StringFlag{
					Name:  "accel",
					Value: "quadtree",
					Usage: "hit-test strategy: none, quadtree or bvh",
				},
				cli.StringFlag{
					Name:  "shading",
					Value: "path",
					Usage: "shading mode: path or normals",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame (default output/<scene>/render_<timestamp>.png)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
