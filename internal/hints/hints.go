// Package hints builds the short remedies the CLI appends to error messages.
// Every hint is formatted as "\n  hint: <text>".
package hints

import (
	"strings"
)

// ConfigDirName is the directory searched under the user config directory.
const ConfigDirName = "sitegen"

// ForConfigNotFound suggests --config or, when one of the searched paths is
// in the user config directory, creating that file.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ConfigDirName+"/") || strings.Contains(p, ConfigDirName+`\`) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForUnclosedDelimiter explains how to fix an unbalanced inline marker.
func ForUnclosedDelimiter() string {
	return format("close the marker within the same block, or remove the stray one")
}

// ForFrontMatter describes the expected front matter layout.
func ForFrontMatter() string {
	return format(`front matter starts and ends with a "---" line; keys: title, description, date, draft`)
}

// ForOutputDirectory is shown when the public directory cannot be written.
func ForOutputDirectory() string {
	return format("check the parent directory exists and is writable")
}

// ForTimeout is shown when a page exceeds the conversion timeout.
func ForTimeout() string {
	return format("raise the limit with --timeout")
}

// ForAssetNotFound lists the available names for a missing style or template.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
