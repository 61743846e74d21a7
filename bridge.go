package ttf

import (
	"sync"

	"github.com/gogpu/ttf/rasterizer"
)

var bridgeOnce sync.Once

// installFallbackBridge registers substituteGlyph with the rasterizer.
// The rasterizer has a single hook slot, so it is installed once per
// process and dispatches to whichever Font owns the face being rendered.
func installFallbackBridge() {
	bridgeOnce.Do(func() {
		rasterizer.SetFallbackHook(substituteGlyph)
	})
}

// substituteGlyph returns the handle that should draw r in place of face.
// Faces without a Font owner are returned unchanged, which makes the
// rasterizer draw its own placeholder glyph.
func substituteGlyph(face *rasterizer.Font, r rune) *rasterizer.Font {
	if face == nil {
		return nil
	}
	owner, ok := face.Owner().(*Font)
	if !ok || owner == nil {
		return face
	}
	if sub := owner.FindValidFontFor(r); sub != nil {
		return sub
	}
	return face
}
