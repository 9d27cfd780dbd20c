package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from a content directory")
	fmt.Fprintln(w, "  convert    Convert one markdown file to an HTML page")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitegen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clear the public directory, copy static files into it, and render every")
	fmt.Fprintln(w, ".md and .markdown file under the content directory to a matching .html page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown sources (default from config, then \"content\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Public directory (default \"public\")")
	fmt.Fprintln(w, "      --static <dir>        Static directory (default \"static\")")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --drafts              Include pages with draft: true")
	printRenderFlags(w)
	printCommonFlags(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen convert <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert one markdown file to an HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file, \"-\" for stdout (default <file>.html)")
	fmt.Fprintln(w, "      --title <s>           Page title (default from front matter or H1)")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended to the style")
	printRenderFlags(w)
	printCommonFlags(w)
}

func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>       Renderer: native, goldmark")
	fmt.Fprintln(w, "  -s, --style <s>           Style name, CSS file path, or inline CSS")
	fmt.Fprintln(w, "      --no-style            Disable the stylesheet")
	fmt.Fprintln(w, "      --template <s>        Template name or HTML file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Theme directory with styles/ and templates/")
	fmt.Fprintln(w, "      --base-path <path>    URL prefix the site is served under")
	fmt.Fprintln(w, "      --highlight           Syntax highlight fenced code")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per page timeout (default 30s)")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --no-color            Disable colored output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEGEN_CONFIG, SITEGEN_CONTENT_DIR, SITEGEN_PUBLIC_DIR, SITEGEN_STYLE,")
	fmt.Fprintln(w, "  SITEGEN_BASE_PATH, SITEGEN_WORKERS, SITEGEN_TIMEOUT")
	fmt.Fprintln(w, "  Flags override environment variables, which override the config file.")
}

// runHelp prints help for a command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitegen version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitegen help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
