package assets

// AssetResolver loads from an optional theme directory and falls back to the
// embedded assets for anything the theme does not provide.
type AssetResolver struct {
	theme    AssetLoader
	embedded AssetLoader
}

// NewAssetResolver returns a resolver over the theme at themeDir. An empty
// themeDir yields a resolver that only serves embedded assets.
func NewAssetResolver(themeDir string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if themeDir == "" {
		return r, nil
	}
	theme, err := NewFilesystemLoader(themeDir)
	if err != nil {
		return nil, err
	}
	r.theme = theme
	return r, nil
}

// LoadStyle implements AssetLoader.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.resolve(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate implements AssetLoader.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.resolve(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// HasTheme reports whether a theme directory is configured.
func (r *AssetResolver) HasTheme() bool {
	return r.theme != nil
}

// resolve falls back to embedded assets only when the theme lacks the asset.
func (r *AssetResolver) resolve(load func(AssetLoader) (string, error)) (string, error) {
	if r.theme != nil {
		content, err := load(r.theme)
		if err == nil || !IsNotFound(err) {
			return content, err
		}
	}
	return load(r.embedded)
}

var _ AssetLoader = (*AssetResolver)(nil)
