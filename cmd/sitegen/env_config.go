package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/haploeco/bdd-static-site-generator/internal/config"
)

// envPrefix starts every environment variable sitegen reads.
const envPrefix = "SITEGEN_"

// envConfig holds configuration from environment variables. Values sit
// between the config file and command line flags in precedence.
type envConfig struct {
	ConfigPath string        // SITEGEN_CONFIG
	ContentDir string        // SITEGEN_CONTENT_DIR
	PublicDir  string        // SITEGEN_PUBLIC_DIR
	Style      string        // SITEGEN_STYLE
	BasePath   string        // SITEGEN_BASE_PATH
	Workers    int           // SITEGEN_WORKERS
	Timeout    time.Duration // SITEGEN_TIMEOUT
}

var knownEnvVars = map[string]bool{
	"SITEGEN_CONFIG":      true,
	"SITEGEN_CONTENT_DIR": true,
	"SITEGEN_PUBLIC_DIR":  true,
	"SITEGEN_STYLE":       true,
	"SITEGEN_BASE_PATH":   true,
	"SITEGEN_WORKERS":     true,
	"SITEGEN_TIMEOUT":     true,
}

// loadEnvConfig reads the SITEGEN_* variables. Unparsable numbers and
// durations are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("SITEGEN_CONFIG"),
		ContentDir: getenv("SITEGEN_CONTENT_DIR"),
		PublicDir:  getenv("SITEGEN_PUBLIC_DIR"),
		Style:      getenv("SITEGEN_STYLE"),
		BasePath:   getenv("SITEGEN_BASE_PATH"),
	}
	if timeout := getenv("SITEGEN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := getenv("SITEGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars flags SITEGEN_* variables that are probably typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with the set variables.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Input.ContentDir = env.ContentDir
	}
	if env.PublicDir != "" {
		cfg.Output.PublicDir = env.PublicDir
	}
	if env.Style != "" {
		cfg.Render.Style = env.Style
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
