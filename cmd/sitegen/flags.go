package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks malformed command lines.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	noColor bool
}

// renderFlags override the render, site and assets config sections.
type renderFlags struct {
	engine    string
	style     string
	template  string
	assetPath string
	basePath  string
	highlight bool
	noStyle   bool
	timeout   time.Duration
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	render  renderFlags
	output  string
	static  string
	workers int
	drafts  bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	render renderFlags
	output string
	title  string
	css    string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "renderer: native, goldmark")
	fs.StringVarP(&f.style, "style", "s", "", "style name, CSS file path, or inline CSS")
	fs.StringVar(&f.template, "template", "", "template name or HTML file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "theme directory with styles/ and templates/")
	fs.StringVar(&f.basePath, "base-path", "", "URL prefix the site is served under")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax highlight fenced code")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable the stylesheet")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per page timeout (default 30s)")
}

// parseBuildFlags parses build arguments, returning the positional ones.
func parseBuildFlags(args []string, env *Environment) (*buildFlags, *flag.FlagSet, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.StringVarP(&f.output, "output", "o", "", "public directory")
	fs.StringVar(&f.static, "static", "", "static directory copied into the output")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft")

	if err := parse(fs, args, env.Stdout, printBuildUsage); err != nil {
		return nil, nil, nil, err
	}
	return f, fs, fs.Args(), nil
}

// parseConvertFlags parses convert arguments, returning the positional ones.
func parseConvertFlags(args []string, env *Environment) (*convertFlags, *flag.FlagSet, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet("convert")
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	fs.StringVarP(&f.output, "output", "o", "", `output file ("-" for stdout)`)
	fs.StringVar(&f.title, "title", "", "page title (default from front matter or H1)")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended to the style")

	if err := parse(fs, args, env.Stdout, printConvertUsage); err != nil {
		return nil, nil, nil, err
	}
	return f, fs, fs.Args(), nil
}

// newFlagSet returns a silent FlagSet; callers report errors themselves.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// parse runs fs over args. On --help it prints usage to w and returns
// flag.ErrHelp unwrapped so callers can exit cleanly.
func parse(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) error {
	err := fs.Parse(args)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, flag.ErrHelp):
		usage(w)
		return flag.ErrHelp
	default:
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
}
