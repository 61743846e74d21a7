// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import "sync/atomic"

// FallbackFunc chooses the handle that should draw r when f has no glyph
// for it. Returning f, nil or a closed handle keeps f, which then draws its
// own placeholder glyph.
type FallbackFunc func(f *Font, r rune) *Font

// fallbackHook is the single process-wide substitution slot.
var fallbackHook atomic.Pointer[FallbackFunc]

// SetFallbackHook installs fn as the process-wide substitution hook,
// replacing the previous one. Pass nil to remove it.
func SetFallbackHook(fn FallbackFunc) {
	if fn == nil {
		fallbackHook.Store(nil)
		return
	}
	fallbackHook.Store(&fn)
}

// FallbackHook returns the installed substitution hook, or nil.
func FallbackHook() FallbackFunc {
	if p := fallbackHook.Load(); p != nil {
		return *p
	}
	return nil
}

// resolver maps runes to the handle drawing them for one render call.
// Answers are memoized so the hook runs at most once per rune.
type resolver struct {
	primary *Font
	hook    FallbackFunc
	subs    map[rune]*Font
}

func newResolver(primary *Font) *resolver {
	return &resolver{
		primary: primary,
		hook:    FallbackHook(),
	}
}

// fontFor returns the handle that draws r.
func (res *resolver) fontFor(r rune) *Font {
	if res.primary.GlyphIsProvided(r) || res.hook == nil {
		return res.primary
	}
	if sub, ok := res.subs[r]; ok {
		return sub
	}

	sub := res.hook(res.primary, r)
	if sub == nil || sub.Closed() {
		sub = res.primary
	}
	if sub != res.primary {
		Logger().Debug("rasterizer: glyph substituted",
			"rune", string(r), "from", res.primary.Name(), "to", sub.Name())
	}

	if res.subs == nil {
		res.subs = make(map[rune]*Font)
	}
	res.subs[r] = sub
	return sub
}
