// Package output encodes finished frames as PPM or PNG images.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// WritePPM writes frame as a plain-text P3 image: a "P3\n<w> <h>\n255\n" header
// followed by one "r g b" line per pixel, top row first and left to right.
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	if err := checkFrame(frame); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	for _, p := range frame.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("writing ppm pixels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing ppm: %w", err)
	}
	return nil
}

func checkFrame(frame *renderer.Frame) error {
	if frame == nil || frame.Width <= 0 || frame.Height <= 0 {
		return ErrEmptyFrame
	}
	if len(frame.Pixels) != frame.Width*frame.Height {
		return fmt.Errorf("%dx%d frame holds %d pixels: %w", frame.Width, frame.Height, len(frame.Pixels), ErrEmptyFrame)
	}
	return nil
}
