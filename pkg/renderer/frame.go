package renderer

import (
	"image"
	"image/color"
)

// Frame holds a finished image, stored row-major with the top row first
type Frame struct {
	Width  int
	Height int
	Pixels []RGB8
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]RGB8, width*height),
	}
}

// At returns the pixel in column x of row y, where row 0 is the top of the image
func (f *Frame) At(x, y int) RGB8 {
	return f.Pixels[y*f.Width+x]
}

// Row returns the pixels of row y; writes through the slice modify the frame
func (f *Frame) Row(y int) []RGB8 {
	return f.Pixels[y*f.Width : (y+1)*f.Width]
}

// ToImage converts the frame to an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x, p := range f.Row(y) {
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}
