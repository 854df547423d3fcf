package report

import (
	"fmt"
	"html"
	"strconv"
)

// Element is a single renderable unit of report content. The variant set
// is closed: Text, Markup, Markdown, Image, Document, SectionHeader,
// Divider and the Passthrough fallback produced by the resolver.
type Element interface {
	render(rc *renderContext) (string, error)
	setTag(tag string)
}

// renderContext carries the per-write state handed to each element.
type renderContext struct {
	assets     *assetDir
	thumbnails bool
	snap       Snapshotter
}

// elementBase holds the display tag and sizing overrides shared by all
// variants. Width defaults to 100%; height has no default.
type elementBase struct {
	tag    string
	width  string
	height int // pixels, 0 = unset
}

func (b *elementBase) setTag(tag string) { b.tag = tag }

// imgAttrs renders the width/height attributes for an <img> tag.
func (b *elementBase) imgAttrs() string {
	w := b.width
	if w == "" {
		w = "100%"
	}
	attrs := ` width="` + html.EscapeString(w) + `"`
	if b.height > 0 {
		attrs += ` height="` + strconv.Itoa(b.height) + `"`
	}
	return attrs
}

// TextElement renders a plain paragraph. Escaping leaves inline MathJax
// delimiters intact, so formulas can be embedded directly in the text.
type TextElement struct {
	elementBase
	content string
}

// Text creates a paragraph element from a plain string.
func Text(s string) *TextElement {
	return &TextElement{content: s}
}

func (e *TextElement) render(*renderContext) (string, error) {
	return `<p style="color:#555;">` + html.EscapeString(e.content) + `</p>`, nil
}

// MarkupElement passes a pre-rendered HTML fragment through verbatim.
// The caller is responsible for the fragment's safety.
type MarkupElement struct {
	elementBase
	fragment string
}

// Markup wraps a pre-rendered HTML fragment.
func Markup(fragment string) *MarkupElement {
	return &MarkupElement{fragment: fragment}
}

func (e *MarkupElement) render(*renderContext) (string, error) {
	return e.fragment, nil
}

// PassthroughElement is the fallback variant for unrecognized values.
// The value is converted to text at render time, not at resolution time.
type PassthroughElement struct {
	elementBase
	value any
}

func (e *PassthroughElement) render(*renderContext) (string, error) {
	return html.EscapeString(fmt.Sprint(e.value)), nil
}
