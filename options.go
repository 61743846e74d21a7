package ttf

import "github.com/gogpu/ttf/rasterizer"

// Option configures a Font.
type Option func(*fontConfig)

// fontConfig holds configuration shared by every face of a Font.
type fontConfig struct {
	parserName string
	app        Application
	openOpts   []rasterizer.OpenOption
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		parserName: rasterizer.DefaultParser,
	}
}

// WithParser selects the font parsing backend by the name it was
// registered under with rasterizer.RegisterParser.
// The default is "opentype".
func WithParser(name string) Option {
	return func(c *fontConfig) {
		c.parserName = name
	}
}

// WithApplication makes the Font render for app instead of the
// process-wide active application.
func WithApplication(app Application) Option {
	return func(c *fontConfig) {
		c.app = app
	}
}

// WithGlyphCacheLimit sets how many rendered glyphs each face keeps.
// A value of 0 or less keeps every glyph.
func WithGlyphCacheLimit(n int) Option {
	return func(c *fontConfig) {
		c.openOpts = append(c.openOpts, rasterizer.WithGlyphCacheLimit(n))
	}
}
