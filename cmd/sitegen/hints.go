package main

import (
	"context"
	"errors"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/hints"
)

// hintedError carries a hint computed where the context to build it exists.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

func withHint(err error, hint string) error {
	if hint == "" {
		return err
	}
	return &hintedError{err: err, hint: hint}
}

// hintFor returns the remedy appended to err's message, or "".
func hintFor(err error) string {
	var he *hintedError
	if errors.As(err, &he) {
		return he.hint
	}
	var be *buildError
	if errors.As(err, &be) {
		return "" // each page already printed its own hint
	}

	switch {
	case errors.Is(err, sitegen.ErrUnclosedDelimiter):
		return hints.ForUnclosedDelimiter()
	case errors.Is(err, sitegen.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, sitegen.ErrStyleNotFound):
		return hints.ForAssetNotFound(sitegen.BuiltinStyles())
	case errors.Is(err, sitegen.ErrTemplateNotFound):
		return hints.ForAssetNotFound(sitegen.BuiltinTemplates())
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteHTML), errors.Is(err, ErrPrepareOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// errorMessage formats a command failure for stderr.
func errorMessage(err error) string {
	return "Error: " + err.Error() + hintFor(err)
}
