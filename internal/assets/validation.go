package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could address anything other than a
// single file in the asset directory: empty names, separators and dots.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case strings.ContainsAny(name, `/\.`):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidAssetName, name)
	}
	return nil
}
