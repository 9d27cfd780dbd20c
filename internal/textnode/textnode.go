// Package textnode defines the inline AST unit: a run of text with one style
// and, for links and images, a URL.
package textnode

import (
	"errors"
	"fmt"

	"github.com/haploeco/bdd-static-site-generator/internal/htmlnode"
)

// Sentinel errors for conversion to HTML.
var (
	ErrMissingURL       = errors.New("node requires a non-empty URL")
	ErrUnsupportedStyle = errors.New("unsupported text type")
)

// TextType is the style of a text span.
type TextType int

const (
	Normal TextType = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the style name.
func (t TextType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("TextType(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared styles.
func (t TextType) Valid() bool {
	return t >= Normal && t <= Image
}

// NeedsURL reports whether nodes of this style must carry a URL.
func (t TextType) NeedsURL() bool {
	return t == Link || t == Image
}

// TextNode is an immutable inline span. Compare with == or Equal.
type TextNode struct {
	Text string
	Type TextType
	URL  string
}

// New creates a TextNode without a URL.
func New(text string, typ TextType) TextNode {
	return TextNode{Text: text, Type: typ}
}

// NewLink creates a link span.
func NewLink(text, url string) TextNode {
	return TextNode{Text: text, Type: Link, URL: url}
}

// NewImage creates an image span; text holds the alt text.
func NewImage(alt, url string) TextNode {
	return TextNode{Text: alt, Type: Image, URL: url}
}

// Equal reports structural equality.
func (n TextNode) Equal(other TextNode) bool {
	return n == other
}

// String formats the node for debugging.
func (n TextNode) String() string {
	if n.URL == "" {
		return fmt.Sprintf("TextNode(%q, %s)", n.Text, n.Type)
	}
	return fmt.Sprintf("TextNode(%q, %s, %q)", n.Text, n.Type, n.URL)
}

// ToLeaf converts the span to an HTML leaf node.
//
// Images get src then an empty alt attribute: the span text is not carried
// over as alt text.
func (n TextNode) ToLeaf() (*htmlnode.Node, error) {
	switch n.Type {
	case Normal:
		return htmlnode.RawText(n.Text), nil
	case Bold:
		return htmlnode.Leaf("b", n.Text, nil), nil
	case Italic:
		return htmlnode.Leaf("i", n.Text, nil), nil
	case Code:
		return htmlnode.Leaf("code", n.Text, nil), nil
	case Link:
		if n.URL == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingURL, n.Type)
		}
		return htmlnode.Leaf("a", n.Text, htmlnode.Attrs("href", n.URL)), nil
	case Image:
		if n.URL == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingURL, n.Type)
		}
		return htmlnode.Void("img", htmlnode.Attrs("src", n.URL, "alt", "")), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStyle, n.Type)
	}
}

// ToLeaves converts spans in order, stopping at the first error.
func ToLeaves(nodes []TextNode) ([]*htmlnode.Node, error) {
	leaves := make([]*htmlnode.Node, 0, len(nodes))
	for _, n := range nodes {
		leaf, err := n.ToLeaf()
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}
