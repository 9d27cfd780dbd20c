package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/yamlutil"
)

// ErrFrontMatter indicates malformed front matter.
var ErrFrontMatter = errors.New("invalid front matter")

// frontMatterFence opens and closes a front matter block.
const frontMatterFence = "---"

// FrontMatter is the optional YAML header of a page.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Draft       bool   `yaml:"draft"`
}

// SplitFrontMatter separates a leading front matter block from the body.
// Content without front matter returns a zero FrontMatter and the content
// unchanged. Expects \n line endings.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t") != frontMatterFence {
		return fm, content, nil
	}

	header, body, ok := cutFence(rest)
	if !ok {
		return fm, "", fmt.Errorf("%w: missing closing %q", ErrFrontMatter, frontMatterFence)
	}

	if strings.TrimSpace(header) == "" {
		return fm, body, nil
	}
	if err := yamlutil.UnmarshalStrict([]byte(header), &fm); err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return fm, body, nil
}

// cutFence splits s at the first line consisting of the fence alone.
func cutFence(s string) (before, after string, found bool) {
	offset := 0
	for offset <= len(s) {
		line, _, hasNext := strings.Cut(s[offset:], "\n")
		if strings.TrimRight(line, " \t") == frontMatterFence {
			end := offset + len(line)
			if hasNext {
				end++
			}
			return s[:offset], s[end:], true
		}
		if !hasNext {
			break
		}
		offset += len(line) + 1
	}
	return "", "", false
}
