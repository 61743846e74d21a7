// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package rasterizer

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/image/font"
)

// Parser is a font parsing backend.
// It turns the raw bytes of a font file into a Program.
//
// The default implementation, registered as DefaultParser, uses
// golang.org/x/image/font/opentype.
type Parser interface {
	// Parse parses font data. The data must not be modified while the
	// returned Program is in use.
	Parse(data []byte) (Program, error)
}

// Program is a parsed font that can be instantiated at pixel sizes.
type Program interface {
	// Name returns the font family name, or a placeholder if unknown.
	Name() string

	// HasGlyph reports whether the font maps r to a real glyph
	// (not the .notdef placeholder).
	HasGlyph(r rune) bool

	// NewFace returns a face rendering the font at size pixels per em.
	NewFace(size int) (font.Face, error)
}

// DefaultParser is the name of the built-in OpenType parser.
const DefaultParser = "opentype"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]Parser{
		DefaultParser: opentypeParser{},
	}
)

// RegisterParser registers a parser under name, replacing any parser
// already registered with that name.
func RegisterParser(name string, p Parser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

// UnregisterParser removes the parser registered under name.
// The default parser cannot be removed.
func UnregisterParser(name string) {
	if name == DefaultParser {
		return
	}
	parsersMu.Lock()
	defer parsersMu.Unlock()
	delete(parsers, name)
}

// LookupParser returns the parser registered under name.
// An empty name selects DefaultParser.
func LookupParser(name string) (Parser, error) {
	if name == "" {
		name = DefaultParser
	}
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parsers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses data with the parser registered under name.
func Parse(name string, data []byte) (Program, error) {
	p, err := LookupParser(name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return p.Parse(data)
}
