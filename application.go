package ttf

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
)

// Application is the hosting application as seen by the renderer.
// Its window width is the wrap width for rendered text, and its texture
// creator, when non-nil, receives the rendered pixels.
type Application interface {
	gpucontext.WindowProvider

	// TextureCreator returns the host's texture factory, or nil when the
	// host has no GPU context.
	TextureCreator() gpucontext.TextureCreator
}

var activeApp atomic.Pointer[Application]

// SetApplication sets the process-wide active application.
// Pass nil to clear it.
func SetApplication(app Application) {
	if app == nil {
		activeApp.Store(nil)
		return
	}
	activeApp.Store(&app)
}

// ActiveApplication returns the process-wide active application, or nil.
func ActiveApplication() Application {
	if p := activeApp.Load(); p != nil {
		return *p
	}
	return nil
}

// wrapWidth returns the window width of app in physical pixels.
func wrapWidth(app Application) int {
	w, _ := app.Size()
	scale := app.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	return int(math.Round(float64(w) * scale))
}
