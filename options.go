package sitegen

import (
	"time"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds what options set before NewConverter resolves it.
type converterConfig struct {
	engine         Engine
	styleInput     string
	templateInput  string
	assetPath      string
	highlight      bool
	highlightStyle string
	basePath       string
	siteTitle      string
	siteDesc       string
	timeout        time.Duration
}

const defaultTimeout = 30 * time.Second

// WithEngine selects the renderer. The default is EngineNative.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithStyle sets the page stylesheet from a built-in or theme style name, a
// path to a CSS file, or inline CSS. An empty value disables the stylesheet.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithTemplate sets the page template from a built-in or theme template
// name, or a path to an HTML template file.
func WithTemplate(tmpl string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = tmpl
	}
}

// WithAssetPath loads styles and templates from a theme directory, falling
// back to the built-in assets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader replaces the asset loader entirely.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.loader = loader
	}
}

// WithHighlighting enables syntax highlighting of fenced code that names a
// language, using the chroma style called style ("" for the default).
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithBasePath serves the site below basePath, such as "/docs".
// Root-relative links in page bodies are prefixed with it.
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithSite sets the site title shown after each page title and the
// description used by pages whose front matter has none.
func WithSite(title, description string) Option {
	return func(c *Converter) {
		c.cfg.siteTitle = title
		c.cfg.siteDesc = description
	}
}

// WithTimeout bounds a single Convert call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("sitegen: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}
