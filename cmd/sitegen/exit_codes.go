package main

import (
	"errors"
	"os"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/config"
	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
)

// Exit codes for the sitegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or Markdown syntax
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrPrepareOutput) ||
		errors.Is(err, ErrNoPages) {
		return ExitIO
	}

	// Usage/config/syntax errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrUnsafeOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, sitegen.ErrEmptyMarkdown) ||
		errors.Is(err, sitegen.ErrUnclosedDelimiter) ||
		errors.Is(err, sitegen.ErrFrontMatter) ||
		errors.Is(err, sitegen.ErrInvalidEngine) ||
		errors.Is(err, sitegen.ErrInvalidBasePath) ||
		errors.Is(err, sitegen.ErrInvalidAssetPath) ||
		errors.Is(err, sitegen.ErrInvalidAssetName) ||
		errors.Is(err, sitegen.ErrStyleNotFound) ||
		errors.Is(err, sitegen.ErrTemplateNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
