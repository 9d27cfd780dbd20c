package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/block"
	"github.com/haploeco/bdd-static-site-generator/internal/htmlnode"
	"github.com/haploeco/bdd-static-site-generator/internal/inline"
	"github.com/haploeco/bdd-static-site-generator/internal/textnode"
)

// ErrEmptyDocument indicates a document without any block.
var ErrEmptyDocument = errors.New("document has no content blocks")

// maxHeadingLevel caps the heading level; longer runs of # render as h6.
const maxHeadingLevel = 6

var (
	// languageHint matches an info string on the opening fence line.
	languageHint = regexp.MustCompile(`^[A-Za-z0-9_+#.-]+$`)

	// orderedMarker matches "12. " at the start of an ordered list line.
	orderedMarker = regexp.MustCompile(`^[0-9]+\.[ \t]?`)
)

// Assembler turns classified blocks into HTML node trees.
// The zero value is ready to use and does not highlight code.
type Assembler struct {
	highlighter *Highlighter
}

// NewAssembler creates an Assembler. A nil highlighter disables code
// highlighting.
func NewAssembler(h *Highlighter) *Assembler {
	return &Assembler{highlighter: h}
}

// DocumentToHTML converts a whole document with a default Assembler.
func DocumentToHTML(markdown string) (string, error) {
	return (&Assembler{}).DocumentToHTML(markdown)
}

// DocumentToHTML segments, classifies, assembles and renders markdown. The
// block nodes are rendered in document order and concatenated.
func (a *Assembler) DocumentToHTML(markdown string) (string, error) {
	nodes, err := a.DocumentToNodes(markdown)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, n := range nodes {
		out, err := n.Render()
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// DocumentToNodes builds one node per block, in document order. The first
// failing block aborts the conversion.
func (a *Assembler) DocumentToNodes(markdown string) ([]*htmlnode.Node, error) {
	blocks := block.Segment(markdown)
	if len(blocks) == 0 {
		return nil, ErrEmptyDocument
	}

	nodes := make([]*htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := a.BlockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, block.Classify(b), err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// BlockToNode converts one block to its HTML subtree.
func (a *Assembler) BlockToNode(b string) (*htmlnode.Node, error) {
	switch block.Classify(b) {
	case block.Heading:
		return headingToNode(b)
	case block.Code:
		return a.codeToNode(b)
	case block.Quote:
		return quoteToNode(b)
	case block.UnorderedList:
		return listToNode(b, "ul", stripBullet)
	case block.OrderedList:
		return listToNode(b, "ol", stripNumber)
	default:
		return paragraphToNode(b)
	}
}

// inlineChildren tokenizes text and converts the spans to leaves.
func inlineChildren(text string) ([]*htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return textnode.ToLeaves(spans)
}

func inlineParent(tag, text string) (*htmlnode.Node, error) {
	children, err := inlineChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.Parent(tag, children, nil), nil
}

func paragraphToNode(b string) (*htmlnode.Node, error) {
	return inlineParent("p", joinLines(strings.Split(b, "\n")))
}

func headingToNode(b string) (*htmlnode.Node, error) {
	level := len(b) - len(strings.TrimLeft(b, "#"))
	text := joinLines(strings.Split(b[level:], "\n"))
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	return inlineParent(fmt.Sprintf("h%d", level), text)
}

func quoteToNode(b string) (*htmlnode.Node, error) {
	lines := strings.Split(b, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return inlineParent("blockquote", joinLines(lines))
}

// listToNode builds a list; lines without a marker continue the previous
// item.
func listToNode(b, tag string, strip func(string) (string, bool)) (*htmlnode.Node, error) {
	var items []string
	for _, line := range strings.Split(b, "\n") {
		text, ok := strip(line)
		if !ok && len(items) > 0 {
			items[len(items)-1] = joinLines([]string{items[len(items)-1], line})
			continue
		}
		items = append(items, strings.TrimSpace(text))
	}

	children := make([]*htmlnode.Node, 0, len(items))
	for _, item := range items {
		li, err := inlineParent("li", item)
		if err != nil {
			return nil, err
		}
		children = append(children, li)
	}
	return htmlnode.Parent(tag, children, nil), nil
}

func stripBullet(line string) (string, bool) {
	if line == "" || !strings.ContainsRune("-*+", rune(line[0])) {
		return line, false
	}
	return strings.TrimPrefix(line[1:], " "), true
}

func stripNumber(line string) (string, bool) {
	loc := orderedMarker.FindStringIndex(line)
	if loc == nil {
		return line, false
	}
	return line[loc[1]:], true
}

// codeToNode renders a fenced block as <pre><code>. The body is not
// tokenized. With a highlighter and a known language hint the body is
// replaced by highlighted markup.
func (a *Assembler) codeToNode(b string) (*htmlnode.Node, error) {
	lang, body := splitFence(b)
	if a.highlighter != nil && lang != "" {
		highlighted, ok, err := a.highlighter.Highlight(lang, body)
		if err != nil {
			return nil, err
		}
		if ok {
			return htmlnode.RawText(highlighted), nil
		}
	}

	var attrs htmlnode.Attributes
	if lang != "" {
		attrs = htmlnode.Attrs("class", "language-"+lang)
	}
	code := htmlnode.Leaf("code", body, attrs)
	return htmlnode.Parent("pre", []*htmlnode.Node{code}, nil), nil
}

// splitFence strips the fences and returns the language hint, if the
// opening fence line carries one, and the code body.
func splitFence(b string) (lang, body string) {
	inner := b[len(block.Fence) : len(b)-len(block.Fence)]
	first, rest, found := strings.Cut(inner, "\n")
	if !found {
		return "", inner
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return "", rest
	}
	if languageHint.MatchString(first) {
		return first, rest
	}
	return "", inner
}

// joinLines trims each line and joins the non-empty ones with a space.
func joinLines(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
