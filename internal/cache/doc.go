// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides the rasterized-glyph cache kept by every
// rasterizer font handle.
//
// A handle renders each rune at one fixed pixel size, so rendered glyph
// masks can be reused for the lifetime of the handle. The cache is bounded
// by a soft entry limit and evicts least recently used glyphs first.
//
//	c := cache.New[rune, Glyph](256)
//	c.Put('a', g)
//	g, ok := c.Get('a')
//
// # Thread Safety
//
// Cache is NOT safe for concurrent use. Font handles are driven from the
// thread that owns the rendering context, which serializes all access.
package cache
