package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs lists, per element, the attribute holding a URL.
var rewrittenAttrs = map[atom.Atom]string{
	atom.A:      "href",
	atom.Img:    "src",
	atom.Link:   "href",
	atom.Script: "src",
	atom.Source: "src",
}

// RewriteBasePath prefixes root-relative URLs ("/x", not "//x") with
// basePath, for sites served below the domain root. An empty basePath or
// "/" returns the HTML unchanged.
//
// The HTML is parsed and re-serialized, so the output is normalized by
// golang.org/x/net/html.
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	prefix := strings.TrimSuffix(basePath, "/")
	if prefix == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, prefix)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only the children are rendered.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, prefix string) {
	if n.Type == html.ElementNode {
		if key, ok := rewrittenAttrs[n.DataAtom]; ok {
			rewriteAttr(n, key, prefix)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, prefix)
	}
}

func rewriteAttr(n *html.Node, key, prefix string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRootRelative(attr.Val) {
			continue
		}
		n.Attr[i].Val = prefix + attr.Val
	}
}

// isRootRelative reports whether path starts at the site root.
// Protocol-relative URLs ("//host/x") are excluded.
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
