// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
	"github.com/haploeco/bdd-static-site-generator/internal/yamlutil"
)

var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config directory searched for
// named configs.
const AppDirName = "sitegen"

// Engines lists the accepted render.engine values.
var Engines = []string{"native", "goldmark"}

const (
	MaxTitleLength   = 200
	MaxPathLength    = 4096
	MaxNameLength    = 64
	MaxWorkers       = 1024
	MaxDescLength    = 500
	maxEngineNameLen = 16
)

// Config is the site configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Assets AssetsConfig `yaml:"assets"`
	Build  BuildConfig  `yaml:"build"`
}

// SiteConfig holds site-wide metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`       // fallback page title suffix
	Description string `yaml:"description"` // used when a page has none
	BasePath    string `yaml:"basePath"`    // "/" or a sub-path such as "/docs"
}

// InputConfig locates the sources.
type InputConfig struct {
	ContentDir string `yaml:"contentDir"`
	StaticDir  string `yaml:"staticDir"` // copied verbatim; missing is fine
}

// OutputConfig locates the generated site.
type OutputConfig struct {
	PublicDir string `yaml:"publicDir"`
}

// RenderConfig selects how pages are rendered.
type RenderConfig struct {
	Engine    string `yaml:"engine"`
	Highlight bool   `yaml:"highlight"`
	Style     string `yaml:"style"`    // stylesheet name, empty for none
	Template  string `yaml:"template"` // page template name, empty for default
}

// AssetsConfig points at an optional theme directory.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty uses embedded assets only
}

// BuildConfig tunes the build.
type BuildConfig struct {
	Workers int  `yaml:"workers"` // 0 picks from GOMAXPROCS
	Drafts  bool `yaml:"drafts"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site:   SiteConfig{BasePath: "/"},
		Input:  InputConfig{ContentDir: "content", StaticDir: "static"},
		Output: OutputConfig{PublicDir: "public"},
		Render: RenderConfig{Engine: "native", Style: "default"},
	}
}

// Validate checks value ranges and field lengths. LoadConfig calls it; callers
// building a Config by hand should too.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.description", c.Site.Description, MaxDescLength},
		{"site.basePath", c.Site.BasePath, MaxPathLength},
		{"input.contentDir", c.Input.ContentDir, MaxPathLength},
		{"input.staticDir", c.Input.StaticDir, MaxPathLength},
		{"output.publicDir", c.Output.PublicDir, MaxPathLength},
		{"render.engine", c.Render.Engine, maxEngineNameLen},
		{"render.style", c.Render.Style, MaxNameLength},
		{"render.template", c.Render.Template, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath must start with \"/\", got %q", ErrInvalidField, c.Site.BasePath)
	}
	if c.Render.Engine != "" && !isEngine(c.Render.Engine) {
		return fmt.Errorf("%w: render.engine %q (must be one of %s)", ErrInvalidField, c.Render.Engine, strings.Join(Engines, ", "))
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Build.Workers)
	}
	if c.Input.ContentDir == "" {
		return fmt.Errorf("%w: input.contentDir is required", ErrInvalidField)
	}
	if c.Output.PublicDir == "" {
		return fmt.Errorf("%w: output.publicDir is required", ErrInvalidField)
	}
	return nil
}

func isEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}

func validateFieldLength(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, field, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads the config named by nameOrPath. A value containing a path
// separator or ending in .yaml or .yml is read as a file; anything else is
// resolved with SearchPaths.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !IsPath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-chosen config
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, path, yamlutil.Describe(err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsPath reports whether LoadConfig reads nameOrPath as a file rather than
// resolving it as a name.
func IsPath(nameOrPath string) bool {
	switch filepath.Ext(nameOrPath) {
	case ".yaml", ".yml":
		return true
	}
	return fileutil.IsFilePath(nameOrPath)
}

// SearchPaths returns, in lookup order, the files tried for a config name:
// ./name.yaml, ./name.yml, then the same under the user config directory.
func SearchPaths(name string) []string {
	exts := []string{".yaml", ".yml"}
	paths := make([]string, 0, 2*len(exts))
	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(dir, AppDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
