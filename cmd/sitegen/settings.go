package main

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/config"
	"github.com/haploeco/bdd-static-site-generator/internal/hints"
)

// ErrInvalidTimeout is returned for a negative --timeout.
var ErrInvalidTimeout = errors.New("invalid timeout")

// settings is the resolved configuration of one command run.
type settings struct {
	cfg     *config.Config
	timeout time.Duration // 0 keeps the converter default
}

// resolveSettings layers config file, environment and flags, in increasing
// precedence, and validates the result.
func resolveSettings(common commonFlags, render renderFlags, fs *flag.FlagSet, env *Environment) (*settings, error) {
	if render.timeout < 0 {
		return nil, fmt.Errorf("%w: %v (must be positive)", ErrInvalidTimeout, render.timeout)
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	cfg, err := loadConfig(name)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)
	mergeRenderFlags(render, fs, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := envCfg.Timeout
	if fs.Changed("timeout") {
		timeout = render.timeout
	}
	return &settings{cfg: cfg, timeout: timeout}, nil
}

// loadConfig returns the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err == nil {
		return cfg, nil
	}
	err = fmt.Errorf("loading config: %w", err)
	if errors.Is(err, config.ErrConfigNotFound) && !config.IsPath(name) {
		return nil, withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return nil, err
}

// mergeRenderFlags applies the render flags the user actually set.
func mergeRenderFlags(f renderFlags, fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("engine") {
		cfg.Render.Engine = f.engine
	}
	if fs.Changed("style") {
		cfg.Render.Style = f.style
	}
	if f.noStyle {
		cfg.Render.Style = ""
	}
	if fs.Changed("template") {
		cfg.Render.Template = f.template
	}
	if fs.Changed("highlight") {
		cfg.Render.Highlight = f.highlight
	}
	if fs.Changed("asset-path") {
		cfg.Assets.BasePath = f.assetPath
	}
	if fs.Changed("base-path") {
		cfg.Site.BasePath = f.basePath
	}
}

// converterOptions translates the settings into converter options.
func (s *settings) converterOptions() []sitegen.Option {
	cfg := s.cfg
	opts := []sitegen.Option{
		sitegen.WithEngine(sitegen.Engine(cfg.Render.Engine)),
		sitegen.WithStyle(cfg.Render.Style),
		sitegen.WithBasePath(cfg.Site.BasePath),
		sitegen.WithSite(cfg.Site.Title, cfg.Site.Description),
	}
	if cfg.Render.Template != "" {
		opts = append(opts, sitegen.WithTemplate(cfg.Render.Template))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, sitegen.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Render.Highlight {
		opts = append(opts, sitegen.WithHighlighting(""))
	}
	if s.timeout > 0 {
		opts = append(opts, sitegen.WithTimeout(s.timeout))
	}
	return opts
}
