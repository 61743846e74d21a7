// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ttf/internal/cache"
)

// MaxSize is the largest pixel size a handle can be opened at.
const MaxSize = 4096

// DefaultGlyphCacheLimit is the default number of rendered glyphs kept per
// handle.
const DefaultGlyphCacheLimit = 512

// Font is a font program opened at one pixel size.
//
// A Font carries an opaque owner value that the fallback hook uses to reach
// whatever structure created the handle. The rasterizer never interprets
// the owner.
//
// Font is NOT safe for concurrent use.
type Font struct {
	program Program
	face    font.Face
	size    int
	metrics font.Metrics
	owner   any
	glyphs  *cache.Cache[rune, glyph]
	closed  bool
}

// glyph is a rendered glyph mask positioned relative to the pen origin on
// the baseline.
type glyph struct {
	mask    *image.Alpha // nil when nothing is drawn (spaces)
	advance fixed.Int26_6
}

// OpenOption configures Open.
type OpenOption func(*openConfig)

type openConfig struct {
	cacheLimit int
}

// WithGlyphCacheLimit sets how many rendered glyphs the handle keeps.
// A value of 0 or less keeps every glyph.
func WithGlyphCacheLimit(n int) OpenOption {
	return func(c *openConfig) {
		c.cacheLimit = n
	}
}

// Open instantiates p at size pixels per em.
func Open(p Program, size int, opts ...OpenOption) (*Font, error) {
	if p == nil {
		return nil, ErrNilProgram
	}
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	config := openConfig{cacheLimit: DefaultGlyphCacheLimit}
	for _, opt := range opts {
		opt(&config)
	}

	face, err := p.NewFace(size)
	if err != nil {
		return nil, err
	}

	f := &Font{
		program: p,
		face:    face,
		size:    size,
		metrics: face.Metrics(),
		glyphs:  cache.New[rune, glyph](config.cacheLimit),
	}
	Logger().Debug("rasterizer: font opened", "name", p.Name(), "size", size)
	return f, nil
}

// Close releases the face. Closing twice is a no-op.
// The owner tag is kept so late hook calls still resolve safely.
func (f *Font) Close() error {
	if f == nil || f.closed {
		return nil
	}
	f.closed = true
	f.glyphs.Clear()
	err := f.face.Close()
	f.face = nil
	return err
}

// Closed reports whether Close has been called.
func (f *Font) Closed() bool {
	return f == nil || f.closed
}

// Program returns the parsed font the handle was opened from.
func (f *Font) Program() Program {
	return f.program
}

// Name returns the font family name.
func (f *Font) Name() string {
	return f.program.Name()
}

// Size returns the pixel size the handle was opened at.
func (f *Font) Size() int {
	return f.size
}

// Metrics returns the face metrics at the handle's size.
func (f *Font) Metrics() font.Metrics {
	return f.metrics
}

// Ascent returns the ascent in whole pixels.
func (f *Font) Ascent() int {
	return f.metrics.Ascent.Ceil()
}

// LineSkip returns the distance between consecutive baselines in whole
// pixels.
func (f *Font) LineSkip() int {
	if h := f.metrics.Height.Ceil(); h > 0 {
		return h
	}
	if h := (f.metrics.Ascent + f.metrics.Descent).Ceil(); h > 0 {
		return h
	}
	return f.size
}

// GlyphIsProvided reports whether the handle has a real glyph for r.
// A nil or closed handle provides nothing.
func (f *Font) GlyphIsProvided(r rune) bool {
	if f == nil || f.closed {
		return false
	}
	return f.program.HasGlyph(r)
}

// SetOwner tags the handle with an opaque owner value.
func (f *Font) SetOwner(owner any) {
	f.owner = owner
}

// Owner returns the value set by SetOwner, or nil.
func (f *Font) Owner() any {
	if f == nil {
		return nil
	}
	return f.owner
}

// glyph returns the rendered glyph for r, rasterizing it on first use.
func (f *Font) glyph(r rune) glyph {
	return f.glyphs.GetOrCreate(r, func() glyph {
		return f.rasterize(r)
	})
}

// rasterize renders r with the pen at the origin and copies the mask,
// since faces may reuse their mask buffer between calls.
func (f *Font) rasterize(r rune) glyph {
	dr, mask, maskp, advance, _ := f.face.Glyph(fixed.Point26_6{}, r)
	g := glyph{advance: advance}
	if mask == nil {
		if adv, ok := f.face.GlyphAdvance(r); ok {
			g.advance = adv
		}
		return g
	}
	if dr.Empty() {
		return g
	}
	alpha := image.NewAlpha(dr)
	draw.Draw(alpha, dr, mask, maskp, draw.Src)
	g.mask = alpha
	return g
}

// kern returns the kerning adjustment between two runes drawn by this
// handle.
func (f *Font) kern(r0, r1 rune) fixed.Int26_6 {
	return f.face.Kern(r0, r1)
}
