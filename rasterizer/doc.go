// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package rasterizer turns UTF-8 text and a sized font handle into an RGBA
// pixel surface.
//
// # Overview
//
// The package plays the part of a native glyph rasterizer. Raw font bytes
// are parsed by a named [Parser] into a [Program]; a Program is opened at a
// pixel size into a [Font] handle; handles are rendered with
// [RenderUTF8BlendedWrapped].
//
//	prog, err := rasterizer.Parse(rasterizer.DefaultParser, goregular.TTF)
//	if err != nil {
//	    return err
//	}
//	f, err := rasterizer.Open(prog, 24)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	s, err := rasterizer.RenderUTF8BlendedWrapped(f, "Hello", color.White, 320)
//
// # Font Substitution
//
// A handle carries an opaque owner value ([Font.SetOwner]). Whenever the
// rendered handle has no glyph for a rune, the rasterizer asks the single
// process-wide [FallbackFunc] installed with [SetFallbackHook] for a
// substitute handle and draws the glyph from it directly. Within one render
// call the hook is asked once per rune, and substitutes never trigger nested
// substitution.
//
// # Wrapping
//
// Text is split at mandatory line breaks. With a positive wrap width, lines
// are also broken at Unicode line-break opportunities (UAX #14, via
// github.com/go-text/typesetting/segmenter); a single word wider than the
// wrap width is broken between characters.
//
// # Thread Safety
//
// Font handles are NOT safe for concurrent use. The parser registry and the
// fallback hook slot are process-wide and may be set from any goroutine.
package rasterizer
