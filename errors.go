// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ttf

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the ttf package.
var (
	// ErrNoFacesLoaded is returned when rendering with an empty registry.
	ErrNoFacesLoaded = errors.New("ttf: no font faces loaded")

	// ErrNoValidPrimaryFace is returned when the primary face has no handle.
	ErrNoValidPrimaryFace = errors.New("ttf: primary face has no valid handle")

	// ErrNoActiveContext is returned when no application provides a wrap width.
	ErrNoActiveContext = errors.New("ttf: no active application context")

	// ErrEmptyFontFile is returned when a font file has no content.
	ErrEmptyFontFile = errors.New("ttf: empty font file")

	// ErrFontClosed is returned when loading into a closed registry.
	ErrFontClosed = errors.New("ttf: font is closed")

	// ErrFaceNotPrepared is returned by Load on a face without a buffer.
	ErrFaceNotPrepared = errors.New("ttf: face has no font buffer")
)

// FaceLoadError reports that a face could not be created at a pixel size.
// Causes include malformed font data and sizes the rasterizer rejects.
type FaceLoadError struct {
	Size int
	Err  error
}

func (e *FaceLoadError) Error() string {
	return fmt.Sprintf("ttf: failed to load face at %dpx: %v", e.Size, e.Err)
}

func (e *FaceLoadError) Unwrap() error { return e.Err }

// FileReadError reports that a font file could not be read completely.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("ttf: failed to read font file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ResizeError reports the faces that could not be reloaded by SetSize.
// Those faces keep their previous handle and size; every other face was
// resized.
type ResizeError struct {
	Size   int
	Failed []FaceIndex // in load order
	Errs   map[FaceIndex]error
}

func (e *ResizeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ttf: %d face(s) failed to resize to %dpx:", len(e.Failed), e.Size)
	for _, idx := range e.Failed {
		fmt.Fprintf(&b, " [%d] %v;", idx, e.Errs[idx])
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap returns the per-face errors in load order.
func (e *ResizeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, idx := range e.Failed {
		errs = append(errs, e.Errs[idx])
	}
	return errs
}
