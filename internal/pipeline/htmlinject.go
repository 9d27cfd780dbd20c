package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrTemplateRender indicates the page template failed to execute.
var ErrTemplateRender = errors.New("page template rendering failed")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// PageData is what a page template sees.
type PageData struct {
	Title       string
	SiteTitle   string
	Description string
	Content     template.HTML // trusted: produced by the converter
	BasePath    string
}

// PageRenderer defines the contract for wrapping a body fragment in a page.
type PageRenderer interface {
	RenderPage(ctx context.Context, data *PageData) (string, error)
}

// TemplatePage renders pages with an html/template.
type TemplatePage struct {
	tmpl *template.Template
}

// NewTemplatePage parses tmplContent. Templates use {{.Title}},
// {{.SiteTitle}}, {{.Description}}, {{.Content}} and {{.BasePath}}.
func NewTemplatePage(tmplContent string) (*TemplatePage, error) {
	tmpl, err := template.New("page").Option("missingkey=error").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &TemplatePage{tmpl: tmpl}, nil
}

// RenderPage executes the template with data.
func (p *TemplatePage) RenderPage(ctx context.Context, data *PageData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("%w: nil page data", ErrTemplateRender)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
