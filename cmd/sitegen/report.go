package main

import (
	"fmt"
	"time"

	"github.com/gookit/color"
)

// resultSummary holds the page counts of a build.
type resultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies the outcome of every page.
func countResults(results []pageResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per page and, for more than one page, a
// summary. Failures always go to stderr, even with --quiet.
func printResults(results []pageResult, common commonFlags, env *Environment) resultSummary {
	summary := countResults(results)
	paint := painter(common.noColor)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "%s %s: %v%s\n", paint(color.Red, "FAILED"), r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if common.quiet {
			continue
		}

		switch {
		case r.Skipped:
			fmt.Fprintf(env.Stdout, "%s %s (draft)\n", paint(color.Yellow, "Skipped"), r.InputPath)
		case common.verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Skipped > 0 {
			fmt.Fprintf(env.Stdout, ", %d draft(s) skipped", summary.Skipped)
		}
		fmt.Fprintln(env.Stdout)
	}

	return summary
}

// painter colors labels unless disabled. gookit/color also drops the codes
// on its own when the terminal lacks color support.
func painter(noColor bool) func(color.Color, string) string {
	if noColor {
		return func(_ color.Color, s string) string { return s }
	}
	return func(c color.Color, s string) string { return c.Sprint(s) }
}
