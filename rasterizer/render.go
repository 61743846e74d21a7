// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// RenderUTF8BlendedWrapped renders text with f into a new surface,
// antialiased and alpha-blended in color fg.
//
// Lines break at mandatory line breaks and, when wrapWidth > 0, wherever a
// line would grow wider than wrapWidth pixels. Runes f has no glyph for are
// drawn from the handle chosen by the fallback hook.
//
// The surface is as wide as the widest line and one line skip tall per
// line. Empty text yields a fully transparent surface one pixel wide and
// one line tall.
func RenderUTF8BlendedWrapped(f *Font, text string, fg color.Color, wrapWidth int) (*Surface, error) {
	if err := checkFont(f); err != nil {
		return nil, err
	}

	lines := layoutText(newResolver(f), sanitize(text), wrapWidth)
	width := 1
	for _, l := range lines {
		width = max(width, l.width)
	}
	skip := f.LineSkip()
	s := NewSurface(width, len(lines)*skip)

	dst := s.view()
	src := image.NewUniform(fg)
	ascent := f.Ascent()
	for i, l := range lines {
		baseline := i*skip + ascent
		for j, c := range l.cells {
			mask := c.g.mask
			if mask == nil {
				continue
			}
			r := mask.Rect.Add(image.Pt(l.xs[j], baseline))
			draw.DrawMask(dst, r, src, image.Point{}, mask, mask.Rect.Min, draw.Over)
		}
	}

	Logger().Debug("rasterizer: text rendered",
		"font", f.Name(), "lines", len(lines), "width", s.Width(), "height", s.Height())
	return s, nil
}

// SizeUTF8Wrapped returns the dimensions RenderUTF8BlendedWrapped would
// produce for the same arguments, without drawing.
func SizeUTF8Wrapped(f *Font, text string, wrapWidth int) (width, height int, err error) {
	if err := checkFont(f); err != nil {
		return 0, 0, err
	}
	lines := layoutText(newResolver(f), sanitize(text), wrapWidth)
	width = 1
	for _, l := range lines {
		width = max(width, l.width)
	}
	return width, len(lines) * f.LineSkip(), nil
}

func checkFont(f *Font) error {
	if f == nil {
		return ErrNilFont
	}
	if f.closed {
		return ErrFontClosed
	}
	return nil
}

// sanitize replaces ill-formed UTF-8 with U+FFFD.
func sanitize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	out, _, err := transform.String(runes.ReplaceIllFormed(), text)
	if err != nil {
		return strings.ToValidUTF8(text, "\ufffd")
	}
	return out
}
