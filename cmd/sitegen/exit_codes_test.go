package main

// Notes:
// - exitCodeFor: we test the sentinel errors of each exit class, plus wrapped
//   and aggregated errors to verify the errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/config"
	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"not a directory", fileutil.ErrNotDirectory, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"prepare output", ErrPrepareOutput, ExitIO},
		{"no pages", ErrNoPages, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/syntax errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"unsafe output", ErrUnsafeOutput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"empty markdown", sitegen.ErrEmptyMarkdown, ExitUsage},
		{"unclosed delimiter", sitegen.ErrUnclosedDelimiter, ExitUsage},
		{"front matter", sitegen.ErrFrontMatter, ExitUsage},
		{"invalid engine", sitegen.ErrInvalidEngine, ExitUsage},
		{"invalid base path", sitegen.ErrInvalidBasePath, ExitUsage},
		{"invalid asset path", sitegen.ErrInvalidAssetPath, ExitUsage},
		{"style not found", sitegen.ErrStyleNotFound, ExitUsage},
		{"template not found", sitegen.ErrTemplateNotFound, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},
		{"hinted config error", withHint(config.ErrConfigNotFound, "\n  hint: x"), ExitUsage},
		{"build with syntax error", &buildError{failed: 1, errs: []error{sitegen.ErrUnclosedDelimiter}}, ExitUsage},
		{"build with read error", &buildError{failed: 2, errs: []error{sitegen.ErrFrontMatter, ErrReadMarkdown}}, ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("Unix convention codes changed: %d %d %d", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell reserved codes", code)
		}
	}
}
