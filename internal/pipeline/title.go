package pipeline

import (
	"errors"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/block"
)

// ErrNoTitle indicates the document has no level-one heading.
var ErrNoTitle = errors.New("no h1 heading found")

// ExtractTitle returns the text of the first "# " heading block.
// Inline markers in the heading are returned as written.
func ExtractTitle(markdown string) (string, error) {
	for _, b := range block.Segment(markdown) {
		if block.Classify(b) != block.Heading {
			continue
		}
		first, _, _ := strings.Cut(b, "\n")
		if title, ok := strings.CutPrefix(first, "# "); ok {
			if title = strings.TrimSpace(title); title != "" {
				return title, nil
			}
		}
	}
	return "", ErrNoTitle
}
