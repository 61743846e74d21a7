// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ttf

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/gogpu/ttf/rasterizer"
)

// FaceIndex identifies a face within a Font.
// Indices are allocated in increasing order and never reused by a Font.
type FaceIndex int32

// InvalidFaceIndex is returned when a face could not be loaded.
const InvalidFaceIndex FaceIndex = -1

// faceEntry is one loaded face with its index.
type faceEntry struct {
	index FaceIndex
	face  *FontFace
}

// Font is a registry of font faces sharing one pixel size.
//
// Faces are kept in load order. The first face is the primary face used
// for rendering; the others supply glyphs it lacks.
//
// Font is NOT safe for concurrent use.
type Font struct {
	baseSize int
	entries  []faceEntry
	next     FaceIndex
	config   fontConfig
	closed   bool
}

// NewFont creates an empty registry with the given base pixel size.
// The first call also installs the process-wide glyph fallback hook.
func NewFont(baseSize int, opts ...Option) *Font {
	installFallbackBridge()

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Font{
		baseSize: baseSize,
		config:   config,
	}
}

// LoadFromMemory loads a face from buf at the base size. The Font takes
// ownership of buf and calls dispose on it exactly once: on Unload, on
// Close, or before returning if loading fails.
//
// On failure it returns InvalidFaceIndex and the error.
func (f *Font) LoadFromMemory(buf []byte, dispose DisposeFunc) (FaceIndex, error) {
	if f.closed {
		if dispose != nil {
			dispose(buf)
		}
		return InvalidFaceIndex, ErrFontClosed
	}

	face := newFontFace(f.config)
	face.Prepare(buf, dispose)
	if err := face.Load(f.baseSize, f); err != nil {
		face.DisposeAll()
		Logger().Warn("ttf: font face load failed", "size", f.baseSize, "err", err)
		return InvalidFaceIndex, err
	}

	idx := f.next
	f.next++
	f.entries = append(f.entries, faceEntry{index: idx, face: face})
	Logger().Debug("ttf: font face loaded", "index", idx, "name", face.Name(), "size", f.baseSize)
	return idx, nil
}

// releaseFileBuffer is the disposal callback for buffers read from files.
var releaseFileBuffer DisposeFunc = func(buf []byte) {
	clear(buf)
}

// LoadFromFile reads the whole file at path and loads it as a face.
//
// A file that cannot be opened, is empty or cannot be read completely
// yields InvalidFaceIndex and a *FileReadError.
func (f *Font) LoadFromFile(path string) (FaceIndex, error) {
	file, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return InvalidFaceIndex, &FileReadError{Path: path, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()
	return f.loadFile(path, file)
}

// LoadFromFS is like LoadFromFile but reads path from fsys.
func (f *Font) LoadFromFS(fsys fs.FS, path string) (FaceIndex, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return InvalidFaceIndex, &FileReadError{Path: path, Err: err}
	}
	defer func() {
		_ = file.Close()
	}()
	return f.loadFile(path, file)
}

func (f *Font) loadFile(path string, file fs.File) (FaceIndex, error) {
	buf, err := readFontFile(file)
	if err != nil {
		Logger().Warn("ttf: font file read failed", "path", path, "err", err)
		return InvalidFaceIndex, &FileReadError{Path: path, Err: err}
	}
	return f.LoadFromMemory(buf, releaseFileBuffer)
}

// readFontFile reads file in one go. A partially filled buffer is
// released before the error is returned.
func readFontFile(file fs.File) ([]byte, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size <= 0 {
		return nil, ErrEmptyFontFile
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(file, buf)
	if err != nil {
		releaseFileBuffer(buf[:n])
		return nil, fmt.Errorf("read %d of %d bytes: %w", n, size, err)
	}
	return buf, nil
}

// Unload disposes the face at idx and removes it.
// Unloading an absent index does nothing.
func (f *Font) Unload(idx FaceIndex) {
	i := f.position(idx)
	if i < 0 {
		return
	}
	face := f.entries[i].face
	f.entries = slices.Delete(f.entries, i, i+1)
	face.DisposeAll()
	Logger().Debug("ttf: font face unloaded", "index", idx)
}

// SetSize reloads every face at pixelSize and makes it the base size for
// later loads, whatever the outcome.
//
// Faces that fail to reload keep their previous handle and size. They are
// reported in a *ResizeError; the other faces are resized regardless.
func (f *Font) SetSize(pixelSize int) error {
	if f.closed {
		return ErrFontClosed
	}
	f.baseSize = pixelSize

	var resizeErr *ResizeError
	for _, e := range f.entries {
		err := e.face.Load(pixelSize, f)
		if err == nil {
			continue
		}
		Logger().Warn("ttf: font face resize failed",
			"index", e.index, "size", pixelSize, "kept", e.face.Size(), "err", err)
		if resizeErr == nil {
			resizeErr = &ResizeError{Size: pixelSize, Errs: make(map[FaceIndex]error)}
		}
		resizeErr.Failed = append(resizeErr.Failed, e.index)
		resizeErr.Errs[e.index] = err
	}
	if resizeErr != nil {
		return resizeErr
	}
	return nil
}

// FindValidFontFor returns the handle of the first face, in load order,
// that has a glyph for r. It returns nil if no face has one.
func (f *Font) FindValidFontFor(r rune) *rasterizer.Font {
	for _, e := range f.entries {
		if e.face.ProvidesGlyph(r) {
			return e.face.Handle()
		}
	}
	return nil
}

// Face returns the face loaded at idx.
func (f *Font) Face(idx FaceIndex) (*FontFace, bool) {
	i := f.position(idx)
	if i < 0 {
		return nil, false
	}
	return f.entries[i].face, true
}

// Indices returns the indices of the loaded faces in load order.
func (f *Font) Indices() []FaceIndex {
	indices := make([]FaceIndex, len(f.entries))
	for i, e := range f.entries {
		indices[i] = e.index
	}
	return indices
}

// Len returns the number of loaded faces.
func (f *Font) Len() int {
	return len(f.entries)
}

// BaseSize returns the pixel size new faces are loaded at.
func (f *Font) BaseSize() int {
	return f.baseSize
}

// Close disposes every face. Loading into a closed Font fails with
// ErrFontClosed. Closing twice is a no-op.
func (f *Font) Close() error {
	if f.closed {
		return nil
	}
	for _, e := range f.entries {
		e.face.DisposeAll()
	}
	Logger().Debug("ttf: font closed", "faces", len(f.entries))
	f.entries = nil
	f.closed = true
	return nil
}

// primary returns the face used for rendering, or nil.
func (f *Font) primary() *FontFace {
	if len(f.entries) == 0 {
		return nil
	}
	return f.entries[0].face
}

func (f *Font) position(idx FaceIndex) int {
	return slices.IndexFunc(f.entries, func(e faceEntry) bool {
		return e.index == idx
	})
}
