// Package block splits a Markdown document into blocks and classifies each
// block by its leading syntax.
package block

import (
	"fmt"
	"strings"
	"unicode"
)

// Type is the kind of a block. It is derived from the block text each time
// Classify runs and never stored.
type Type int

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the block type name.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Fence opens and closes a code block.
const Fence = "```"

// separator is the blank line between blocks.
const separator = "\n\n"

// Segment splits document into blocks. Each line loses its leading
// whitespace, the block is trimmed, and empty blocks are dropped.
// Document order is preserved.
func Segment(document string) []string {
	chunks := strings.Split(document, separator)
	blocks := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if b := normalize(chunk); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func normalize(chunk string) string {
	lines := strings.Split(chunk, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Classify returns the block type from the block's leading characters.
// An empty block is a Paragraph. A code fence that is opened but not
// closed falls through to the later rules.
func Classify(block string) Type {
	switch {
	case block == "":
		return Paragraph
	case strings.HasPrefix(block, "#"):
		return Heading
	case isFenced(block):
		return Code
	case strings.HasPrefix(block, ">"):
		return Quote
	case strings.HasPrefix(block, "-"),
		strings.HasPrefix(block, "*"),
		strings.HasPrefix(block, "+"):
		return UnorderedList
	case len(block) >= 2 && isDigit(block[0]) && block[1] == '.':
		return OrderedList
	default:
		return Paragraph
	}
}

// isFenced reports whether block both starts and ends with a fence.
// A lone fence counts as opened only.
func isFenced(block string) bool {
	return len(block) >= 2*len(Fence) &&
		strings.HasPrefix(block, Fence) &&
		strings.HasSuffix(block, Fence)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
