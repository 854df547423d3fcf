package report

import (
	"bytes"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// markupRenderer abstracts Markdown to HTML fragment conversion.
type markupRenderer interface {
	Render(src string) (string, error)
}

// goldmarkRenderer converts Markdown using goldmark with GFM extensions
// and chroma syntax highlighting.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkRenderer{md: md}
}

// Render converts Markdown source to an HTML fragment.
func (r *goldmarkRenderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}
	return buf.String(), nil
}

// defaultMarkdown is shared by all Markdown elements. goldmark.Markdown
// is safe for concurrent use.
var defaultMarkdown = sync.OnceValue(func() markupRenderer {
	return newGoldmarkRenderer()
})

// MarkdownElement converts Markdown source to HTML when the report is
// written. Conversion errors surface from Write, not at construction.
type MarkdownElement struct {
	elementBase
	source string
	md     markupRenderer
}

// Markdown creates an element from Markdown source.
func Markdown(src string) *MarkdownElement {
	return &MarkdownElement{source: src, md: defaultMarkdown()}
}

func (e *MarkdownElement) render(*renderContext) (string, error) {
	return e.md.Render(e.source)
}
