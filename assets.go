package sitegen

import (
	"fmt"

	"github.com/haploeco/bdd-static-site-generator/internal/assets"
)

// DefaultStyle and DefaultTemplate name the built-in assets.
const (
	DefaultStyle    = assets.DefaultStyle
	DefaultTemplate = assets.DefaultTemplate
)

// AssetLoader loads stylesheets and page templates by name. Implement it to
// serve assets from somewhere other than disk.
type AssetLoader interface {
	// LoadStyle returns the stylesheet called name, or ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the page template called name, or
	// ErrTemplateNotFound.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader returns a loader over the theme directory at basePath with
// the built-in assets as fallback. An empty basePath serves built-ins only.
//
// The directory holds styles/{name}.css and templates/{name}.html.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}
	return resolver, nil
}

// BuiltinStyles lists the names of the built-in stylesheets.
func BuiltinStyles() []string {
	return assets.NewEmbeddedLoader().Names(assets.KindStyle)
}

// BuiltinTemplates lists the names of the built-in page templates.
func BuiltinTemplates() []string {
	return assets.NewEmbeddedLoader().Names(assets.KindTemplate)
}
