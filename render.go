// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ttf

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/ttf/rasterizer"
)

// RenderText renders text in color c through the primary face, wrapped at
// the application's window width, and returns it as a texture owned by the
// caller. Glyphs missing from the primary face are drawn from the other
// faces.
//
// Failures are not fatal: the caller gets a nil texture and one of
// ErrNoFacesLoaded, ErrNoValidPrimaryFace or ErrNoActiveContext, or a
// texture creation error, and can skip drawing.
func (f *Font) RenderText(text string, c color.Color) (gpucontext.Texture, error) {
	primary, app, err := f.renderTarget()
	if err != nil {
		return nil, err
	}

	s, err := rasterizer.RenderUTF8BlendedWrapped(primary, text, c, wrapWidth(app))
	if err != nil {
		return nil, fmt.Errorf("ttf: render text: %w", err)
	}
	return convertToTexture(app, s)
}

// MeasureText returns the size of the texture RenderText would produce.
func (f *Font) MeasureText(text string) (width, height int, err error) {
	primary, app, err := f.renderTarget()
	if err != nil {
		return 0, 0, err
	}
	width, height, err = rasterizer.SizeUTF8Wrapped(primary, text, wrapWidth(app))
	if err != nil {
		return 0, 0, fmt.Errorf("ttf: measure text: %w", err)
	}
	return width, height, nil
}

// renderTarget returns the primary handle and the application to render for.
func (f *Font) renderTarget() (*rasterizer.Font, Application, error) {
	face := f.primary()
	if face == nil {
		return nil, nil, ErrNoFacesLoaded
	}
	if !face.Loaded() {
		return nil, nil, ErrNoValidPrimaryFace
	}
	app := f.application()
	if app == nil {
		return nil, nil, ErrNoActiveContext
	}
	return face.Handle(), app, nil
}

// application returns the Font's own application, else the active one.
func (f *Font) application() Application {
	if f.config.app != nil {
		return f.config.app
	}
	return ActiveApplication()
}
