package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build", "convert":
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return runCommand(ctx, cmd, rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitegen %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

func runCommand(ctx context.Context, cmd string, args []string, env *Environment) int {
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, args, env)
	case "convert":
		err = runConvert(ctx, args, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, errorMessage(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configureMaxprocs sets GOMAXPROCS from the container CPU quota.
// maxprocs.Set only fails on an invalid GOMAXPROCS variable, in which case
// the runtime default stays in effect.
func configureMaxprocs(env *Environment, verbose bool) {
	logf := func(string, ...any) {}
	if verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}
