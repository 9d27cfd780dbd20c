package assets

// Kind identifies the asset family being loaded.
type Kind string

const (
	KindStyle    Kind = "style"
	KindTemplate Kind = "template"
)

// dir returns the subdirectory holding assets of this kind.
func (k Kind) dir() string {
	if k == KindStyle {
		return "styles"
	}
	return "templates"
}

// ext returns the file extension for assets of this kind.
func (k Kind) ext() string {
	if k == KindStyle {
		return ".css"
	}
	return ".html"
}

// notFound returns the sentinel reported when an asset of this kind is missing.
func (k Kind) notFound() error {
	if k == KindStyle {
		return ErrStyleNotFound
	}
	return ErrTemplateNotFound
}

// relPath returns the slash-separated path of the named asset.
func (k Kind) relPath(name string) string {
	return k.dir() + "/" + name + k.ext()
}

// AssetLoader loads stylesheets and page templates by name.
type AssetLoader interface {
	// LoadStyle returns the CSS stylesheet called name (no extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the page template called name (no extension).
	LoadTemplate(name string) (string, error)
}
