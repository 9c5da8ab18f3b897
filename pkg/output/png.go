package output

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// WritePNG encodes frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := checkFrame(frame); err != nil {
		return err
	}
	if err := png.Encode(w, frame.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Save writes frame to path, picking the format from the file extension.
// Missing parent directories are created.
func Save(path string, frame *renderer.Frame) error {
	var write func(io.Writer, *renderer.Frame) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		write = WritePPM
	case ".png":
		write = WritePNG
	default:
		return fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	if err := checkFrame(frame); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(file, frame); err != nil {
		file.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
