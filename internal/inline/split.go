// Package inline turns a run of Markdown text into a flat sequence of styled
// text nodes.
//
// Tokenize applies the passes in a fixed order: bold (**), italic (_),
// code (`), images, then links. Each pass only rewrites Normal nodes, so
// markers inside an already styled span are left alone and nested emphasis
// is not supported.
package inline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/textnode"
)

// Sentinel errors for inline splitting.
var (
	ErrUnclosedDelimiter = errors.New("invalid markdown syntax: unclosed delimiter")
	ErrInvalidDelimiter  = errors.New("invalid delimiter")
)

// Delimiters.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

// delimiterOrder is the order Tokenize applies delimiter passes in.
var delimiterOrder = []string{BoldDelimiter, ItalicDelimiter, CodeDelimiter}

// StyleFor returns the style a delimiter introduces.
func StyleFor(delimiter string) (textnode.TextType, error) {
	switch delimiter {
	case BoldDelimiter:
		return textnode.Bold, nil
	case ItalicDelimiter:
		return textnode.Italic, nil
	case CodeDelimiter:
		return textnode.Code, nil
	default:
		return textnode.Normal, fmt.Errorf("%w: %q", ErrInvalidDelimiter, delimiter)
	}
}

// SplitByDelimiter splits every Normal node on delimiter. Text between a pair
// of delimiters takes the delimiter's style; the rest stays Normal. A node
// with an odd number of delimiters fails with ErrUnclosedDelimiter.
func SplitByDelimiter(nodes []textnode.TextNode, delimiter string) ([]textnode.TextNode, error) {
	style, err := StyleFor(delimiter)
	if err != nil {
		return nil, err
	}

	out := make([]textnode.TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Type != textnode.Normal || !strings.Contains(node.Text, delimiter) {
			out = append(out, node)
			continue
		}

		parts := strings.Split(node.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: no closing %q in %q", ErrUnclosedDelimiter, delimiter, node.Text)
		}
		for i, part := range parts {
			if i%2 == 0 {
				out = append(out, textnode.New(part, textnode.Normal))
			} else {
				out = append(out, textnode.New(part, style))
			}
		}
	}
	return out, nil
}

// SplitImages replaces ![alt](url) in Normal nodes with Image nodes.
func SplitImages(nodes []textnode.TextNode) []textnode.TextNode {
	return splitMatches(nodes, ExtractImages, func(m Match) (string, textnode.TextNode) {
		return "![" + m.Text + "](" + m.URL + ")", textnode.NewImage(m.Text, m.URL)
	})
}

// SplitLinks replaces [label](url) in Normal nodes with Link nodes.
func SplitLinks(nodes []textnode.TextNode) []textnode.TextNode {
	return splitMatches(nodes, ExtractLinks, func(m Match) (string, textnode.TextNode) {
		return "[" + m.Text + "](" + m.URL + ")", textnode.NewLink(m.Text, m.URL)
	})
}

// splitMatches walks the matches of each Normal node in order, cutting the
// remaining text at the first occurrence of each match's source syntax.
// Zero-length Normal nodes are not emitted.
func splitMatches(
	nodes []textnode.TextNode,
	extract func(string) []Match,
	build func(Match) (string, textnode.TextNode),
) []textnode.TextNode {
	out := make([]textnode.TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Type != textnode.Normal {
			out = append(out, node)
			continue
		}
		matches := extract(node.Text)
		if len(matches) == 0 {
			out = append(out, node)
			continue
		}

		remaining := node.Text
		for _, m := range matches {
			syntax, styled := build(m)
			before, after, found := strings.Cut(remaining, syntax)
			if !found {
				continue
			}
			if before != "" {
				out = append(out, textnode.New(before, textnode.Normal))
			}
			out = append(out, styled)
			remaining = after
		}
		if remaining != "" {
			out = append(out, textnode.New(remaining, textnode.Normal))
		}
	}
	return out
}

// Tokenize converts inline Markdown text into styled text nodes.
// The result always holds at least one node.
func Tokenize(text string) ([]textnode.TextNode, error) {
	nodes := []textnode.TextNode{textnode.New(text, textnode.Normal)}

	var err error
	for _, delimiter := range delimiterOrder {
		nodes, err = SplitByDelimiter(nodes, delimiter)
		if err != nil {
			return nil, err
		}
	}

	nodes = SplitImages(nodes)
	nodes = SplitLinks(nodes)
	return nodes, nil
}
