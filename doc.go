// Package sitegen turns Markdown pages into HTML.
//
// # Quick Start
//
//	conv, err := sitegen.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, sitegen.Input{
//	    Markdown: "# Hello\n\nSome **bold** text",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.HTML), 0o644)
//
// result.HTML is a complete page; result.Body is the converted fragment
// alone. For the bare Markdown-to-HTML step without page templating use
// MarkdownToHTML.
//
// # Conversion Pipeline
//
//  1. Preprocessing (Unicode NFC, line endings, ==highlight== syntax)
//  2. Front matter extraction
//  3. Block segmentation and classification, inline tokenization, and
//     rendering of the resulting node tree (or goldmark with EngineGoldmark)
//  4. Base path rewriting of root-relative links
//  5. Page templating and stylesheet injection
//
// # Supported Markdown
//
// The native engine understands a deliberately small dialect. Blocks are
// separated by a blank line and classified by their first characters:
// "#" headings, "```" fenced code, ">" quotes, "-", "*" or "+" unordered
// lists, "1." ordered lists, and paragraphs. Inline text supports
// **bold**, _italic_, `code`, ![images](url) and [links](url). Emphasis does
// not nest, and an unbalanced marker is reported as ErrUnclosedDelimiter.
// Attribute values and text are emitted as written, without HTML escaping.
//
// # Configuration
//
//	conv, err := sitegen.NewConverter(
//	    sitegen.WithStyle("minimal"),
//	    sitegen.WithHighlighting("monokai"),
//	    sitegen.WithBasePath("/docs"),
//	    sitegen.WithAssetPath("./theme"),
//	)
//
// A Converter is immutable once built and safe for concurrent use.
//
// # Command Line
//
// cmd/sitegen builds a whole site with this package: it mirrors a content
// directory of .md files into a public directory of .html pages, copies
// static files alongside, and reads settings from a YAML config file,
// SITEGEN_* environment variables and flags.
package sitegen
