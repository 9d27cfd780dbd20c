package pipeline

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/haploeco/bdd-static-site-generator/internal/block"
)

// ==text== is swapped for Private Use Area runes before conversion so both
// engines carry it through as plain text. ConvertMarkPlaceholders turns the
// runes into <mark> tags once the HTML exists.
const (
	MarkStartPlaceholder = "\uE000"
	MarkEndPlaceholder   = "\uE001"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// Preprocessor normalizes Markdown before block segmentation.
type Preprocessor struct{}

// PreprocessMarkdown composes Unicode to NFC and converts line endings to
// \n. Outside fenced code it also collapses blank line runs and rewrites
// ==highlight== spans. Fenced code is passed through untouched.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = norm.NFC.String(content)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return mapProse(content, func(prose string) string {
		prose = highlightPattern.ReplaceAllString(prose, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
		return multipleBlankLines.ReplaceAllString(prose, "\n\n")
	})
}

// mapProse applies fn to every run of lines outside fenced code and
// returns the document with the fenced lines unchanged. The newline ending
// a closing fence belongs to the prose after it. A fence that never closes
// keeps the rest of the document as code.
func mapProse(content string, fn func(string) string) string {
	var out, prose strings.Builder
	flush := func() {
		out.WriteString(fn(prose.String()))
		prose.Reset()
	}
	endCode := func(line string) {
		body, nl := strings.CutSuffix(line, "\n")
		out.WriteString(body)
		if nl {
			prose.WriteString("\n")
		}
	}

	inFence := false
	for _, line := range strings.SplitAfter(content, "\n") {
		switch kind := fenceKind(line); {
		case inFence && kind == fenceOpen:
			endCode(line)
			inFence = false
		case inFence:
			out.WriteString(line)
		case kind == fenceOpen:
			flush()
			out.WriteString(line)
			inFence = true
		case kind == fenceInline:
			flush()
			endCode(line)
		default:
			prose.WriteString(line)
		}
	}
	flush()
	return out.String()
}

type fence int

const (
	fenceNone   fence = iota
	fenceOpen         // ``` or ```lang; also closes an open fence
	fenceInline       // ```code``` on one line
)

func fenceKind(line string) fence {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, block.Fence) {
		return fenceNone
	}
	if len(trimmed) >= 2*len(block.Fence) && strings.HasSuffix(trimmed, block.Fence) {
		return fenceInline
	}
	return fenceOpen
}

// ConvertMarkPlaceholders replaces the highlight runes with <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
