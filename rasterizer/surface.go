// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface is the pixel buffer produced by rendering text.
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, rows packed
// without padding, which is the layout texture uploads expect.
type Surface struct {
	width  int
	height int
	data   []uint8
}

// NewSurface creates a transparent surface with the given dimensions.
// Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data (premultiplied RGBA).
func (s *Surface) Data() []uint8 {
	return s.data
}

// RGBAAt returns the premultiplied color of a single pixel.
// Pixels outside the surface are transparent.
func (s *Surface) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.RGBA{}
	}
	i := (y*s.width + x) * 4
	return color.RGBA{R: s.data[i], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// VisiblePixels returns the number of pixels with non-zero alpha.
func (s *Surface) VisiblePixels() int {
	n := 0
	for i := 3; i < len(s.data); i += 4 {
		if s.data[i] != 0 {
			n++
		}
	}
	return n
}

// ToImage copies the surface into a new image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.view())
}

// view returns an image.RGBA sharing the surface's pixels, used as the
// drawing target.
func (s *Surface) view() *image.RGBA {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}
