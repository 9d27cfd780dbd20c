package main

import (
	"context"
	"fmt"
	"os"
	"time"

	sitegen "github.com/haploeco/bdd-static-site-generator"
	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
)

// stdoutPath as the output writes the page to standard output.
const stdoutPath = "-"

// runConvert renders a single Markdown file. Drafts are written: naming a
// file is taken as asking for it.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, fs, positional, err := parseConvertFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("%w: convert takes exactly one markdown file, got %d", ErrUsage, len(positional))
	}
	inputPath := positional[0]
	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	s, err := resolveSettings(flags.common, flags.render, fs, env)
	if err != nil {
		return err
	}
	conv, err := sitegen.NewConverter(s.converterOptions()...)
	if err != nil {
		return err
	}

	start := env.Now()
	content, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided input
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	var css string
	if flags.css != "" {
		data, err := os.ReadFile(flags.css) // #nosec G304 -- user-provided stylesheet
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadCSS, err)
		}
		css = string(data)
	}

	result, err := conv.Convert(ctx, sitegen.Input{
		Markdown:   string(content),
		Title:      flags.title,
		CSS:        css,
		SourceName: inputPath,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = fileutil.ReplaceExt(inputPath, ".html")
	}
	if outputPath == stdoutPath {
		_, err := fmt.Fprint(env.Stdout, result.HTML)
		return err
	}

	if err := writePage(outputPath, result.HTML); err != nil {
		return err
	}

	switch {
	case flags.common.quiet:
	case flags.common.verbose:
		fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", inputPath, outputPath, env.since(start).Round(time.Millisecond))
	default:
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}
