package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for builds.
var (
	ErrNoPages       = errors.New("no markdown files found")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrReadCSS       = errors.New("failed to read CSS file")
	ErrWriteHTML     = errors.New("failed to write HTML file")
	ErrPrepareOutput = errors.New("failed to prepare public directory")
)

// pageConverter is the part of *sitegen.Converter the build uses.
type pageConverter interface {
	Convert(ctx context.Context, input sitegen.Input) (*sitegen.Result, error)
}

// Compile-time interface implementation check.
var _ pageConverter = (*sitegen.Converter)(nil)

// pageResult holds the outcome of a single page.
type pageResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft left out of the build
	Err        error
	Duration   time.Duration
}

// buildError reports failed pages. The page errors stay reachable through
// errors.Is so the exit code reflects their cause.
type buildError struct {
	failed int
	errs   []error
}

func (e *buildError) Error() string   { return fmt.Sprintf("%d page(s) failed", e.failed) }
func (e *buildError) Unwrap() []error { return e.errs }

// runBuild generates the site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, fs, positional, err := parseBuildFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes at most one content directory, got %d", ErrUsage, len(positional))
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	configureMaxprocs(env, flags.common.verbose)

	s, err := resolveSettings(flags.common, flags.render, fs, env)
	if err != nil {
		return err
	}
	cfg := s.cfg
	if len(positional) == 1 {
		cfg.Input.ContentDir = positional[0]
	}
	if flags.output != "" {
		cfg.Output.PublicDir = flags.output
	}
	if flags.static != "" {
		cfg.Input.StaticDir = flags.static
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	if flags.drafts {
		cfg.Build.Drafts = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := checkOutputDir(cfg.Output.PublicDir, cfg.Input.ContentDir, cfg.Input.StaticDir); err != nil {
		return err
	}

	conv, err := sitegen.NewConverter(s.converterOptions()...)
	if err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Input.ContentDir, cfg.Output.PublicDir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Input.ContentDir)
	}

	if err := prepareOutput(cfg.Output.PublicDir, cfg.Input.StaticDir, flags.common, env); err != nil {
		return err
	}

	workers := min(sitegen.ResolveWorkers(cfg.Build.Workers), len(pages))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %d page(s) with %d worker(s)\n", len(pages), workers)
	}

	results := buildPages(ctx, conv, pages, workers, cfg.Build.Drafts, env)
	summary := printResults(results, flags.common, env)
	if summary.Failed > 0 {
		errs := make([]error, 0, summary.Failed)
		for _, r := range results {
			if r.Err != nil {
				errs = append(errs, r.Err)
			}
		}
		return &buildError{failed: summary.Failed, errs: errs}
	}
	return nil
}

// prepareOutput empties publicDir and copies staticDir into it. A missing
// static directory is not an error.
func prepareOutput(publicDir, staticDir string, common commonFlags, env *Environment) error {
	if err := fileutil.ResetDir(publicDir); err != nil {
		return fmt.Errorf("%w: %w", ErrPrepareOutput, err)
	}
	if staticDir == "" || !fileutil.DirExists(staticDir) {
		return nil
	}

	n, err := fileutil.CopyDir(staticDir, publicDir)
	if err != nil {
		return fmt.Errorf("%w: copying static files: %w", ErrPrepareOutput, err)
	}
	if common.verbose {
		fmt.Fprintf(env.Stderr, "Copied %d static file(s) from %s\n", n, staticDir)
	}
	return nil
}

// buildPages converts pages concurrently, at most workers at a time.
// Results keep the order of pages.
func buildPages(ctx context.Context, conv pageConverter, pages []page, workers int, drafts bool, env *Environment) []pageResult {
	results := make([]pageResult, len(pages))

	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, p := range pages {
		g.Go(func() error {
			results[i] = buildPage(ctx, conv, p, drafts, env)
			return nil
		})
	}
	_ = g.Wait() // page errors live in results

	return results
}

// buildPage converts one page and writes it unless it is a skipped draft.
func buildPage(ctx context.Context, conv pageConverter, p page, drafts bool, env *Environment) pageResult {
	start := env.Now()
	result := pageResult{InputPath: p.InputPath, OutputPath: p.OutputPath}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered under the content dir
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		return result
	}

	out, err := conv.Convert(ctx, sitegen.Input{
		Markdown:   string(content),
		SourceName: p.InputPath,
	})
	if err != nil {
		result.Err = err
		return result
	}
	if out.FrontMatter.Draft && !drafts {
		result.Skipped = true
		return result
	}

	if err := writePage(p.OutputPath, out.HTML); err != nil {
		result.Err = err
		return result
	}

	result.Duration = env.since(start)
	return result
}

// writePage writes html to path, creating parent directories.
func writePage(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(html), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteHTML, err)
	}
	return nil
}
