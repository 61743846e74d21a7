// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ttf

import "github.com/gogpu/ttf/rasterizer"

// DisposeFunc releases a font buffer. It is called exactly once with the
// buffer it was registered with.
type DisposeFunc func(buf []byte)

// FontFace is one font resource loaded from an in-memory buffer.
//
// The face owns its buffer and its rasterizer handle. The handle is
// recreated on every Load; the buffer is kept until DisposeAll.
type FontFace struct {
	buf     []byte
	dispose DisposeFunc

	program rasterizer.Program // parsed once per buffer
	handle  *rasterizer.Font
	size    int
	owner   *Font

	parserName string
	openOpts   []rasterizer.OpenOption
}

// newFontFace creates an empty face configured like the registry's faces.
func newFontFace(config fontConfig) *FontFace {
	return &FontFace{
		parserName: config.parserName,
		openOpts:   config.openOpts,
	}
}

// Prepare takes ownership of buf. dispose is called on buf exactly once,
// when the face is disposed. The font is not parsed until Load.
// A face that already holds a buffer disposes it first.
func (f *FontFace) Prepare(buf []byte, dispose DisposeFunc) {
	if f.buf != nil || f.dispose != nil || f.handle != nil {
		f.DisposeAll()
	}
	f.buf = buf
	f.dispose = dispose
}

// Load creates a handle for the held buffer at pixelSize and tags it with
// owner. On success any previous handle is closed and replaced.
//
// On failure Load returns a *FaceLoadError, the previous handle (if any)
// stays in place and nothing is disposed.
func (f *FontFace) Load(pixelSize int, owner *Font) error {
	if len(f.buf) == 0 {
		return &FaceLoadError{Size: pixelSize, Err: ErrFaceNotPrepared}
	}

	if f.program == nil {
		p, err := rasterizer.Parse(f.parserName, f.buf)
		if err != nil {
			return &FaceLoadError{Size: pixelSize, Err: err}
		}
		f.program = p
	}

	handle, err := rasterizer.Open(f.program, pixelSize, f.openOpts...)
	if err != nil {
		return &FaceLoadError{Size: pixelSize, Err: err}
	}
	handle.SetOwner(owner)

	f.closeHandle()
	f.handle = handle
	f.size = pixelSize
	f.owner = owner
	return nil
}

// DisposeAll closes the handle and releases the buffer through the
// disposal callback. Calling it again is a no-op.
func (f *FontFace) DisposeAll() {
	f.closeHandle()
	if f.dispose != nil {
		dispose := f.dispose
		f.dispose = nil
		dispose(f.buf)
	}
	f.buf = nil
	f.program = nil
}

func (f *FontFace) closeHandle() {
	if f.handle == nil {
		return
	}
	if err := f.handle.Close(); err != nil {
		Logger().Warn("ttf: failed to close font handle", "name", f.handle.Name(), "err", err)
	}
	f.handle = nil
}

// ProvidesGlyph reports whether the loaded handle has a glyph for r.
// It returns false when no handle is loaded.
func (f *FontFace) ProvidesGlyph(r rune) bool {
	return f.handle.GlyphIsProvided(r)
}

// Handle returns the rasterizer handle, or nil if none is loaded.
func (f *FontFace) Handle() *rasterizer.Font {
	return f.handle
}

// Loaded reports whether the face has a handle.
func (f *FontFace) Loaded() bool {
	return f.handle != nil
}

// Size returns the pixel size of the current handle.
func (f *FontFace) Size() int {
	return f.size
}

// Owner returns the registry the face was last loaded for.
func (f *FontFace) Owner() *Font {
	return f.owner
}

// Name returns the font family name, or "" before the first successful Load.
func (f *FontFace) Name() string {
	if f.program == nil {
		return ""
	}
	return f.program.Name()
}
