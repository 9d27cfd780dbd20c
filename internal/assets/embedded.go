package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// DefaultStyle and DefaultTemplate name the built-in assets used when the
// site configuration does not choose others.
const (
	DefaultStyle    = "default"
	DefaultTemplate = "page"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader returns an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle implements AssetLoader.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return e.load(KindStyle, name)
}

// LoadTemplate implements AssetLoader.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return e.load(KindTemplate, name)
}

func (e *EmbeddedLoader) load(kind Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := builtin.ReadFile(kind.relPath(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", kind.notFound(), name)
	}
	return string(content), nil
}

// Names lists the built-in assets of the given kind, sorted.
func (e *EmbeddedLoader) Names(kind Kind) []string {
	entries, err := fs.ReadDir(builtin, kind.dir())
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), kind.ext()))
	}
	sort.Strings(names)
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
