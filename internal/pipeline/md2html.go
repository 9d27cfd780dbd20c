package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion. Implementations
// return a body fragment, not a full document.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NativeConverter converts Markdown with the block/inline Assembler.
type NativeConverter struct {
	assembler *Assembler
}

// NewNativeConverter creates a NativeConverter. A nil highlighter disables
// code highlighting.
func NewNativeConverter(h *Highlighter) *NativeConverter {
	return &NativeConverter{assembler: NewAssembler(h)}
}

// ToHTML converts Markdown content to an HTML fragment, one element per block.
// Markdown syntax errors are wrapped with ErrHTMLConversion and keep their
// own sentinel for errors.Is.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return runWithContext(ctx, func() (string, error) {
		out, err := c.assembler.DocumentToHTML(content)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
		}
		return out, nil
	})
}

// GoldmarkConverter converts Markdown to HTML using goldmark (CommonMark + GFM).
// It is the alternate engine, useful to compare against the native output.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and,
// when highlight is set, class-based syntax highlighting.
func NewGoldmarkConverter(highlight bool, styleName string) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	if highlight {
		if styleName == "" {
			styleName = DefaultHighlightStyle
		}
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(styleName),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	return runWithContext(ctx, func() (string, error) {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return buf.String(), nil
	})
}

// runWithContext runs fn in a goroutine and returns early when ctx is
// canceled. Neither engine supports context natively.
func runWithContext(ctx context.Context, fn func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		out, err := fn()
		done <- result{html: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
