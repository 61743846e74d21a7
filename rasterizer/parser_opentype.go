// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// unknownFontName is reported when a font carries no family name.
const unknownFontName = "Unknown Font"

// opentypeParser implements Parser using golang.org/x/image/font/opentype.
type opentypeParser struct{}

// Parse implements Parser.Parse.
func (opentypeParser) Parse(data []byte) (Program, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to parse font: %w", err)
	}
	return &opentypeProgram{
		font: f,
		name: familyName(data, f),
	}, nil
}

// opentypeProgram implements Program over an sfnt.Font.
type opentypeProgram struct {
	font *opentype.Font
	name string
	buf  sfnt.Buffer
}

// Name implements Program.Name.
func (p *opentypeProgram) Name() string {
	return p.name
}

// HasGlyph implements Program.HasGlyph.
func (p *opentypeProgram) HasGlyph(r rune) bool {
	idx, err := p.font.GlyphIndex(&p.buf, r)
	return err == nil && idx != 0
}

// NewFace implements Program.NewFace.
// Sizes are pixels per em: the face is built at 72 DPI.
func (p *opentypeProgram) NewFace(size int) (font.Face, error) {
	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to create face: %w", err)
	}
	return face, nil
}

// familyName reads the family from the OS/2 and name tables through
// go-text/typesetting, falling back to the sfnt name table.
func familyName(data []byte, f *sfnt.Font) string {
	if ld, err := ot.NewLoader(bytes.NewReader(data)); err == nil {
		if desc, _ := gotext.Describe(ld, nil); desc.Family != "" {
			return desc.Family
		}
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return unknownFontName
}
