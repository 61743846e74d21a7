// Command ttfdemo renders a string with the ttf font registry and saves it
// as a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ttf"
)

// fontList collects repeated -font flags.
type fontList []string

func (l *fontList) String() string     { return strings.Join(*l, ",") }
func (l *fontList) Set(v string) error { *l = append(*l, v); return nil }

// headless is an application without a window or GPU.
type headless struct {
	gpucontext.NullWindowProvider
}

func (headless) TextureCreator() gpucontext.TextureCreator { return nil }

func main() {
	var fonts fontList
	flag.Var(&fonts, "font", "font file to load, repeatable; later fonts supply missing glyphs (default: Go fonts)")
	var (
		size    = flag.Int("size", 32, "pixel size")
		width   = flag.Int("width", 640, "wrap width in pixels")
		text    = flag.String("text", "The quick brown fox jumps over the lazy dog.", "text to render")
		fg      = flag.String("color", "#202020", "text color as #rrggbb or #rrggbbaa")
		output  = flag.String("output", "text.png", "output file")
		verbose = flag.Bool("v", false, "log font loading and rendering")
	)
	flag.Parse()

	if *verbose {
		ttf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := parseHexColor(*fg)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}

	f := ttf.NewFont(*size, ttf.WithApplication(headless{gpucontext.NullWindowProvider{W: *width, H: *size}}))
	defer f.Close()

	if len(fonts) == 0 {
		loadDefaultFonts(f)
	}
	for _, path := range fonts {
		if _, err := f.LoadFromFile(path); err != nil {
			log.Printf("Skipping font: %v", err)
		}
	}

	tex, err := f.RenderText(*text, c)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	img := tex.(*ttf.ImageTexture)

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Text saved to %s (%dx%d)\n", *output, img.Width(), img.Height())
}

func loadDefaultFonts(f *ttf.Font) {
	for _, data := range [][]byte{goregular.TTF, gomono.TTF} {
		if _, err := f.LoadFromMemory(data, nil); err != nil {
			log.Fatalf("Failed to load built-in font: %v", err)
		}
	}
}

func savePNG(path string, img *ttf.ImageTexture) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(file, img.Image()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func parseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
