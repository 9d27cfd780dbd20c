package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/config"
	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
)

// Sentinel errors for page discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnsafeOutput       = errors.New("public directory overlaps the sources")
)

// page is one Markdown source and the HTML file generated from it.
type page struct {
	InputPath  string
	OutputPath string
}

// discoverPages walks contentDir for Markdown files and maps each to the
// same relative path under publicDir with an .html extension. Hidden
// directories and a publicDir nested in contentDir are skipped.
func discoverPages(contentDir, publicDir string) ([]page, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	var pages []page
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path == contentDir {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || isWithin(path, publicDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(path) {
			return nil
		}
		pages = append(pages, page{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, contentDir, publicDir),
		})
		return nil
	})
	return pages, err
}

// resolveOutputPath mirrors inputPath, relative to contentDir, into
// publicDir.
func resolveOutputPath(inputPath, contentDir, publicDir string) string {
	rel, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		rel = filepath.Base(inputPath)
	}
	return filepath.Join(publicDir, fileutil.ReplaceExt(rel, ".html"))
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// checkOutputDir refuses a public directory that clearing would destroy
// sources in: the content or static directory itself or one of its parents.
func checkOutputDir(publicDir string, sources ...string) error {
	for _, src := range sources {
		if src == "" {
			continue
		}
		if isWithin(src, publicDir) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeOutput, publicDir, src)
		}
	}
	return nil
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
