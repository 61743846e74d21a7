// Package ttf provides a font-face registry and text renderer for UI toolkits.
//
// # Overview
//
// A [Font] owns a set of independently loaded font faces that share one pixel
// size. Text is rendered through the primary face (the earliest loaded face
// still present). Glyphs the primary face lacks are drawn from the first other
// face that has them, in load order.
//
// # Quick Start
//
//	import "github.com/gogpu/ttf"
//
//	f := ttf.NewFont(16, ttf.WithApplication(app))
//	defer f.Close()
//
//	if _, err := f.LoadFromFile("NotoSans-Regular.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := f.LoadFromFile("NotoSansSymbols-Regular.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	tex, err := f.RenderText("Hello, ✓", color.Black)
//
// # Glyph Fallback
//
// Fallback goes through a single process-wide hook installed into the
// rasterizer when the first Font is created. Every face handle is tagged
// with the Font that owns it, so the hook serves any number of registries.
//
// # Textures
//
// RenderText wraps lines at the physical width of the hosting application's
// window. The pixels are uploaded through the application's
// gpucontext.TextureCreator when it has one; otherwise an [ImageTexture]
// held in CPU memory is returned.
//
// # Thread Safety
//
// Font and FontFace are NOT safe for concurrent use. All calls on a registry
// must come from the goroutine that owns the rendering context.
// Process-wide settings (SetLogger, SetApplication) are safe to change at
// any time.
package ttf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
