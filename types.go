package sitegen

import (
	"github.com/haploeco/bdd-static-site-generator/internal/pipeline"
)

// Engine selects the Markdown renderer.
type Engine string

const (
	// EngineNative is the built-in block and inline converter.
	EngineNative Engine = "native"

	// EngineGoldmark renders CommonMark with GitHub extensions through
	// goldmark.
	EngineGoldmark Engine = "goldmark"
)

// Valid reports whether e names a known engine.
func (e Engine) Valid() bool {
	return e == EngineNative || e == EngineGoldmark
}

// Input is one page to convert.
type Input struct {
	Markdown   string // page source, may start with front matter (required)
	Title      string // overrides front matter and heading titles
	CSS        string // appended after the converter stylesheet
	SourceName string // file name used as the last-resort title
}

// FrontMatter is the YAML header of a page.
type FrontMatter struct {
	Title       string
	Description string
	Date        string
	Draft       bool
}

func fromPipelineFrontMatter(fm pipeline.FrontMatter) FrontMatter {
	return FrontMatter{
		Title:       fm.Title,
		Description: fm.Description,
		Date:        fm.Date,
		Draft:       fm.Draft,
	}
}

// Result is a converted page.
type Result struct {
	HTML        string // complete page
	Body        string // converted Markdown fragment
	Title       string
	FrontMatter FrontMatter
}
