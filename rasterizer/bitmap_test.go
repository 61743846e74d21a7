package rasterizer

import (
	"errors"
	"image"
	"image/color"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// bitmapParser builds 7x13 programs from basicfont. The font data is the
// list of printable ASCII runes the program covers, so tests can create
// fonts with disjoint coverage.
type bitmapParser struct{}

const bitmapParserName = "bitmap"

func init() {
	RegisterParser(bitmapParserName, bitmapParser{})
}

var errBadBitmap = errors.New("bitmap: unsupported rune")

func (bitmapParser) Parse(data []byte) (Program, error) {
	p := &bitmapProgram{name: "Bitmap " + string(data), covered: make(map[rune]bool)}
	for _, r := range string(data) {
		if r < ' ' || r > '~' {
			return nil, errBadBitmap
		}
		p.covered[r] = true
	}
	return p, nil
}

type bitmapProgram struct {
	name    string
	covered map[rune]bool
}

func (p *bitmapProgram) Name() string { return p.name }

func (p *bitmapProgram) HasGlyph(r rune) bool { return p.covered[r] }

func (p *bitmapProgram) NewFace(int) (font.Face, error) {
	runes := make([]rune, 0, len(p.covered))
	for r := range p.covered {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	ranges := make([]basicfont.Range, 0, len(runes)+1)
	for _, r := range runes {
		ranges = append(ranges, basicfont.Range{Low: r, High: r + 1, Offset: int(r - ' ')})
	}
	ranges = append(ranges, basicfont.Range{Low: '\ufffd', High: '\ufffe', Offset: 95})

	face := *basicfont.Face7x13
	face.Ranges = ranges
	return &face, nil
}

// mustBitmapFont opens a bitmap font covering the given runes.
func mustBitmapFont(covered string) *Font {
	p, err := Parse(bitmapParserName, []byte(covered))
	if err != nil {
		panic(err)
	}
	f, err := Open(p, 13)
	if err != nil {
		panic(err)
	}
	return f
}

// glyphImage renders r directly with f, for pixel comparisons.
func glyphImage(f *Font, r rune) *image.RGBA {
	s, err := RenderUTF8BlendedWrapped(f, string(r), color.White, 0)
	if err != nil {
		panic(err)
	}
	return s.ToImage()
}
