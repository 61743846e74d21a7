package ttf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ttf/rasterizer"
)

// bitmapParser builds 7x13 fonts from basicfont with controlled coverage.
// Font data has the form "runes" or "runes|size,size": the printable ASCII
// runes the font covers, then the pixel sizes it refuses to open at.
type bitmapParser struct{}

const bitmapParserName = "bitmap-test"

func init() {
	rasterizer.RegisterParser(bitmapParserName, bitmapParser{})
}

var errBitmapSize = errors.New("bitmap: size rejected")

func (bitmapParser) Parse(data []byte) (rasterizer.Program, error) {
	covered, rejects, _ := strings.Cut(string(data), "|")
	p := &bitmapProgram{
		name:     "Bitmap " + covered,
		covered:  make(map[rune]bool),
		rejected: make(map[int]bool),
	}
	for _, r := range covered {
		if r < ' ' || r > '~' {
			return nil, fmt.Errorf("bitmap: unsupported rune %q", r)
		}
		p.covered[r] = true
	}
	if rejects != "" {
		for _, s := range strings.Split(rejects, ",") {
			size, err := strconv.Atoi(s)
			if err != nil {
				return nil, err
			}
			p.rejected[size] = true
		}
	}
	return p, nil
}

type bitmapProgram struct {
	name     string
	covered  map[rune]bool
	rejected map[int]bool
}

func (p *bitmapProgram) Name() string { return p.name }

func (p *bitmapProgram) HasGlyph(r rune) bool { return p.covered[r] }

func (p *bitmapProgram) NewFace(size int) (font.Face, error) {
	if p.rejected[size] {
		return nil, fmt.Errorf("%w: %d", errBitmapSize, size)
	}
	face := *basicfont.Face7x13
	face.Ranges = nil
	for r := rune(' '); r <= '~'; r++ {
		if p.covered[r] {
			face.Ranges = append(face.Ranges, basicfont.Range{Low: r, High: r + 1, Offset: int(r - ' ')})
		}
	}
	face.Ranges = append(face.Ranges, basicfont.Range{Low: '\ufffd', High: '\ufffe', Offset: 95})
	return &face, nil
}

// disposeCounter counts disposal callbacks per buffer.
type disposeCounter struct {
	calls int
	bufs  [][]byte
}

func (c *disposeCounter) dispose(buf []byte) {
	c.calls++
	c.bufs = append(c.bufs, buf)
}

// testApp is a headless application.
type testApp struct {
	gpucontext.NullWindowProvider
	creator gpucontext.TextureCreator
}

func (a *testApp) TextureCreator() gpucontext.TextureCreator { return a.creator }

func newTestApp(width int) *testApp {
	return &testApp{NullWindowProvider: gpucontext.NullWindowProvider{W: width, H: 100}}
}

// fakeCreator records texture uploads.
type fakeCreator struct {
	calls int
	err   error
}

func (c *fakeCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return &fakeTexture{width: width, height: height, data: append([]byte(nil), data...)}, nil
}

type fakeTexture struct {
	width, height int
	data          []byte
	premultiplied bool
}

func (t *fakeTexture) Width() int               { return t.width }
func (t *fakeTexture) Height() int              { return t.height }
func (t *fakeTexture) SetPremultiplied(pm bool) { t.premultiplied = pm }

// newBitmapFont creates a registry at 13px using the bitmap parser.
func newBitmapFont(opts ...Option) *Font {
	return NewFont(13, append([]Option{WithParser(bitmapParserName)}, opts...)...)
}

// visiblePixels counts pixels with non-zero alpha in a CPU texture.
func visiblePixels(tex *ImageTexture) int {
	n := 0
	pix := tex.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}
