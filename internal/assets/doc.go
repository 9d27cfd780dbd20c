// Package assets provides the stylesheets and page templates used to wrap
// rendered Markdown into complete HTML pages.
//
// Three loaders share the AssetLoader contract:
//
//	EmbeddedLoader    built-in styles and templates compiled into the binary
//	FilesystemLoader  a theme directory on disk
//	AssetResolver     theme directory first, embedded assets as fallback
//
// A theme directory mirrors the embedded layout:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// Asset names are plain identifiers. Names containing separators or dots are
// rejected before any file is touched, and FilesystemLoader refuses paths
// that resolve outside its base directory.
package assets
