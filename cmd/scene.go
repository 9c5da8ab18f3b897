package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeSceneTable(&buf, scene.List())

	_, err := io.Copy(ctx.App.Writer, &buf)
	return err
}

func writeSceneTable(w io.Writer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Seeded", "Description"})
	for _, info := range scenes {
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%t", info.Seeded),
			info.Description,
		})
	}
	table.Render()
}
