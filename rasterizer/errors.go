// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import "errors"

// Sentinel errors for the rasterizer package.
var (
	// ErrEmptyFontData is returned when a parser is given no bytes.
	ErrEmptyFontData = errors.New("rasterizer: empty font data")

	// ErrInvalidSize is returned when a pixel size is outside [1, MaxSize].
	ErrInvalidSize = errors.New("rasterizer: invalid pixel size")

	// ErrUnknownParser is returned when no parser is registered under a name.
	ErrUnknownParser = errors.New("rasterizer: unknown parser")

	// ErrNilProgram is returned when Open is called without a program.
	ErrNilProgram = errors.New("rasterizer: nil program")

	// ErrNilFont is returned when rendering is attempted without a handle.
	ErrNilFont = errors.New("rasterizer: nil font")

	// ErrFontClosed is returned when rendering with a closed handle.
	ErrFontClosed = errors.New("rasterizer: font is closed")
)
