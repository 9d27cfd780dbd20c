package sitegen

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/haploeco/bdd-static-site-generator/internal/fileutil"
	"github.com/haploeco/bdd-static-site-generator/internal/pipeline"
)

var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.Preprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.PageRenderer         = (*pipeline.TemplatePage)(nil)
)

// untitled is the title of a page with no other title source.
const untitled = "Untitled"

// Converter runs the Markdown to HTML page pipeline.
// Create it with NewConverter; it is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	loader        AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pageRenderer  pipeline.PageRenderer
	stylesheet    string // converter style plus highlight classes
}

// NewConverter builds a Converter. Asset and template problems are reported
// here rather than on the first Convert.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:        EngineNative,
			styleInput:    DefaultStyle,
			templateInput: DefaultTemplate,
			timeout:       defaultTimeout,
		},
		preprocessor: &pipeline.Preprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.cfg.engine.Valid() {
		return nil, fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidEngine, c.cfg.engine, EngineNative, EngineGoldmark)
	}
	if c.cfg.basePath != "" && !strings.HasPrefix(c.cfg.basePath, "/") {
		return nil, fmt.Errorf("%w: %q must start with \"/\"", ErrInvalidBasePath, c.cfg.basePath)
	}

	if c.loader == nil {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.loader = loader
	}

	var highlighter *pipeline.Highlighter
	if c.cfg.highlight {
		highlighter = pipeline.NewHighlighter(c.cfg.highlightStyle)
	}
	if c.htmlConverter == nil {
		if c.cfg.engine == EngineGoldmark {
			c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.highlight, c.cfg.highlightStyle)
		} else {
			c.htmlConverter = pipeline.NewNativeConverter(highlighter)
		}
	}

	style, err := c.resolveStyle()
	if err != nil {
		return nil, err
	}
	if highlighter != nil {
		css, err := highlighter.CSS()
		if err != nil {
			return nil, err
		}
		style = joinCSS(style, css)
	}
	c.stylesheet = style

	if c.pageRenderer == nil {
		tmpl, err := c.resolveTemplate()
		if err != nil {
			return nil, err
		}
		page, err := pipeline.NewTemplatePage(tmpl)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}
		c.pageRenderer = page
	}

	return c, nil
}

// Convert turns one Markdown page into HTML. Nothing is returned on error.
// Internal panics are recovered and returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	markdown := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fm, body, err := pipeline.SplitFrontMatter(markdown)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: only front matter", ErrEmptyMarkdown)
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}
	fragment, err = pipeline.RewriteBasePath(fragment, c.cfg.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}
	fragment = pipeline.ConvertMarkPlaceholders(fragment)

	title := pageTitle(input, fm, body)
	description := fm.Description
	if description == "" {
		description = c.cfg.siteDesc
	}
	page, err := c.pageRenderer.RenderPage(ctx, &pipeline.PageData{
		Title:       title,
		SiteTitle:   c.cfg.siteTitle,
		Description: description,
		Content:     template.HTML(fragment), // #nosec G203 -- converter output
		BasePath:    strings.TrimSuffix(c.cfg.basePath, "/"),
	})
	if err != nil {
		return nil, err
	}

	page = c.cssInjector.InjectCSS(ctx, page, joinCSS(c.stylesheet, input.CSS))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Result{
		HTML:        page,
		Body:        fragment,
		Title:       title,
		FrontMatter: fromPipelineFrontMatter(fm),
	}, nil
}

// pageTitle picks, in order: the explicit title, the front matter title,
// the first "# " heading, the source file name, then a placeholder.
func pageTitle(input Input, fm pipeline.FrontMatter, body string) string {
	if input.Title != "" {
		return input.Title
	}
	if fm.Title != "" {
		return fm.Title
	}
	if title, err := pipeline.ExtractTitle(body); err == nil {
		return title
	}
	if input.SourceName != "" {
		return fileutil.ReplaceExt(filepath.Base(input.SourceName), "")
	}
	return untitled
}

// resolveStyle turns the style option into CSS: a file path is read, CSS
// text is used as-is, and anything else is an asset name.
func (c *Converter) resolveStyle() (string, error) {
	input := c.cfg.styleInput
	switch {
	case input == "":
		return "", nil
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-chosen stylesheet
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	case fileutil.IsCSS(input):
		return input, nil
	}

	css, err := c.loader.LoadStyle(input)
	if err != nil {
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// resolveTemplate reads a template file path or loads a named template.
func (c *Converter) resolveTemplate() (string, error) {
	input := c.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-chosen template
		if err != nil {
			return "", fmt.Errorf("loading template file %q: %w", input, err)
		}
		return string(content), nil
	}

	tmpl, err := c.loader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", input, err)
	}
	return tmpl, nil
}

func joinCSS(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

// MarkdownToHTML converts markdown with the native engine and no page
// template: the rendered blocks are concatenated in order. An input with
// no blocks returns ErrEmptyMarkdown.
func MarkdownToHTML(markdown string) (string, error) {
	out, err := pipeline.DocumentToHTML(markdown)
	if errors.Is(err, pipeline.ErrEmptyDocument) {
		return "", ErrEmptyMarkdown
	}
	return out, err
}
