package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("failed to read asset")

	// ErrPathTraversal is returned when an asset path resolves outside the
	// loader's base directory, typically through a symlink.
	ErrPathTraversal = errors.New("asset path escapes base directory")
)

// IsNotFound reports whether err means the asset does not exist, as opposed
// to being unreadable or badly named.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}
