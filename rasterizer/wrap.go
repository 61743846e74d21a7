// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/image/math/fixed"
)

// tabStop is the width of a tab in spaces.
const tabStop = 4

// cell is one rune of a line together with the handle that draws it.
type cell struct {
	r    rune
	font *Font
	g    glyph
}

// line is a laid-out row of text.
type line struct {
	cells []cell
	xs    []int // pen x of each cell, in pixels
	width int   // visible width in pixels, trailing whitespace excluded
}

// isLineBreak reports whether r forces a new line.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// layoutText splits text into lines. With wrapWidth > 0 no line is wider
// than wrapWidth unless a single character already is.
func layoutText(res *resolver, text string, wrapWidth int) []line {
	var (
		lines    []line
		cur      []cell
		curWidth fixed.Int26_6
	)
	flush := func() {
		lines = append(lines, placeLine(cur))
		cur = nil
		curWidth = 0
	}
	limit := fixed.I(wrapWidth)

	var seg segmenter.Segmenter
	seg.InitWithString(text)
	iter := seg.LineIterator()
	for iter.Next() {
		cells, hard := res.cells(iter.Line().Text)

		if wrapWidth <= 0 {
			cur = append(cur, cells...)
		} else {
			content, full := measureCells(cells)
			if len(cur) > 0 && curWidth+content > limit {
				flush()
			}
			if len(cur) == 0 && content > limit {
				for _, c := range cells {
					if len(cur) > 0 && !unicode.IsSpace(c.r) && curWidth+c.g.advance > limit {
						flush()
					}
					cur = append(cur, c)
					curWidth += c.g.advance
				}
			} else {
				cur = append(cur, cells...)
				curWidth += full
			}
		}

		if hard {
			flush()
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// cells converts one break-delimited segment into drawable cells.
// It reports whether the segment ends with a mandatory break.
func (res *resolver) cells(text []rune) ([]cell, bool) {
	hard := false
	out := make([]cell, 0, len(text))
	for _, r := range text {
		switch {
		case isLineBreak(r):
			hard = true
		case r == '\t':
			g := res.primary.glyph(' ')
			out = append(out, cell{r: r, font: res.primary, g: glyph{advance: g.advance * tabStop}})
		case unicode.IsControl(r):
			// not drawn
		default:
			f := res.fontFor(r)
			out = append(out, cell{r: r, font: f, g: f.glyph(r)})
		}
	}
	return out, hard
}

// measureCells returns the advance width of cells without and with their
// trailing whitespace.
func measureCells(cells []cell) (content, full fixed.Int26_6) {
	for _, c := range cells {
		full += c.g.advance
		if !unicode.IsSpace(c.r) {
			content = full
		}
	}
	return content, full
}

// placeLine positions cells on the pen line, kerning neighbours drawn by
// the same handle.
func placeLine(cells []cell) line {
	l := line{cells: cells, xs: make([]int, len(cells))}
	var pen fixed.Int26_6
	for i, c := range cells {
		if i > 0 && cells[i-1].font == c.font {
			pen += c.font.kern(cells[i-1].r, c.r)
		}
		x := pen.Round()
		l.xs[i] = x
		pen += c.g.advance

		if unicode.IsSpace(c.r) {
			continue
		}
		l.width = max(l.width, pen.Ceil())
		if c.g.mask != nil {
			l.width = max(l.width, x+c.g.mask.Rect.Max.X)
		}
	}
	return l
}
