package sitegen

import (
	"errors"

	"github.com/haploeco/bdd-static-site-generator/internal/assets"
	"github.com/haploeco/bdd-static-site-generator/internal/htmlnode"
	"github.com/haploeco/bdd-static-site-generator/internal/inline"
	"github.com/haploeco/bdd-static-site-generator/internal/pipeline"
	"github.com/haploeco/bdd-static-site-generator/internal/textnode"
)

var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// Markdown syntax errors.
var (
	ErrUnclosedDelimiter = inline.ErrUnclosedDelimiter
	ErrFrontMatter       = pipeline.ErrFrontMatter
)

// Conversion errors. These indicate a malformed node tree and are not
// expected from well-formed input.
var (
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrTemplateRender   = pipeline.ErrTemplateRender
	ErrMissingURL       = textnode.ErrMissingURL
	ErrUnsupportedStyle = textnode.ErrUnsupportedStyle
	ErrMissingValue     = htmlnode.ErrMissingValue
	ErrMissingTag       = htmlnode.ErrMissingTag
	ErrMissingChildren  = htmlnode.ErrMissingChildren
)

// Asset errors.
var (
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)
