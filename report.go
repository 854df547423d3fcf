package report

import (
	"fmt"
	"html"
	"os"
	"strings"

	"go.uber.org/zap"
)

// tocEntry pairs a section display name with its derived anchor id.
type tocEntry struct {
	name string
	id   string
}

// Report assembles an ordered list of layout rows into a single static
// HTML page with externally materialized assets.
//
// A Report is a builder: AddElement and AddElements may be called any
// number of times before Write. It is not safe for concurrent use, and
// two writes targeting the same output path must not run concurrently -
// both passes would race on the shared asset directory.
type Report struct {
	path       string
	title      string
	thumbnails bool
	tocWidth   int
	logger     *zap.Logger
	snap       Snapshotter

	rows []*Row
	toc  []tocEntry
}

// New creates a report. The output path may be empty and supplied later
// at Write time; Write fails with ErrNoOutputPath if neither provides one.
func New(path string, opts ...Option) *Report {
	r := &Report{
		path:       path,
		title:      DefaultTitle,
		thumbnails: true,
		tocWidth:   DefaultTOCWidth,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the output path configured at construction; empty when
// the path is deferred to Write.
func (r *Report) Path() string { return r.path }

// AddElement appends one value to the report. A *Row is appended as-is;
// anything else is resolved into an element and wrapped in a single
// full-width column. A *SectionHeader added here - and only here - is
// registered in the table of contents.
func (r *Report) AddElement(value any) {
	if sh, ok := value.(*SectionHeader); ok {
		r.toc = append(r.toc, tocEntry{name: sh.name, id: sh.id})
	}
	row, ok := value.(*Row)
	if !ok {
		row = Cols1(value)
	}
	r.rows = append(r.rows, row)
}

// AddElements is the variadic convenience over AddElement.
func (r *Report) AddElements(values ...any) {
	for _, v := range values {
		r.AddElement(v)
	}
}

// ResetAssets deletes and recreates the asset directory for the
// configured output path. Write performs this reset itself; the method
// exists so the destructive step is visible in the API and can be
// exercised in isolation.
func (r *Report) ResetAssets() error {
	if r.path == "" {
		return ErrNoOutputPath
	}
	return newAssetDir(r.path).Reset()
}

// Write renders the report to path, fully overwriting any previous file
// at that location. An empty path falls back to the one given at
// construction. The sibling assets/<stem> directory is deleted and
// rebuilt before rendering, so the report file and its asset directory
// must always be moved together.
//
// Write snapshots the row list at call time; mutating the report while
// a write is in progress does not affect the pass. Any materialization
// or I/O failure aborts the pass and may leave a partially written
// asset directory behind.
func (r *Report) Write(path string) error {
	if path == "" {
		path = r.path
	}
	if path == "" {
		return ErrNoOutputPath
	}

	rows := make([]*Row, len(r.rows))
	copy(rows, r.rows)
	toc := make([]tocEntry, len(r.toc))
	copy(toc, r.toc)

	assets := newAssetDir(path)
	if err := assets.Reset(); err != nil {
		return err
	}

	rc := &renderContext{
		assets:     assets,
		thumbnails: r.thumbnails,
		snap:       r.snap,
	}

	var content strings.Builder
	for _, row := range rows {
		frag, err := row.render(rc)
		if err != nil {
			return err
		}
		content.WriteString(frag)
	}

	doc := buildDocument(r.title, r.buildBody(toc, content.String()))
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrReportWrite, err)
	}

	r.logger.Info("wrote report", zap.String("path", path))
	return nil
}

// buildBody assembles the page body: the title banner, then either the
// two-column TOC layout or the content directly at full width.
func (r *Report) buildBody(toc []tocEntry, content string) string {
	var b strings.Builder
	b.WriteString(`<div class="container-fluid"><div class="row">`)
	b.WriteString(`<div class="col-xl-12"><h1>` + html.EscapeString(r.title) + `</h1></div>`)
	b.WriteString(`</div></div>`)

	if len(toc) == 0 {
		b.WriteString(content)
		return b.String()
	}

	b.WriteString(`<div class="container-fluid"><div class="row">`)
	b.WriteString(fmt.Sprintf(`<div class="col-md-%d">`, r.tocWidth))
	for _, e := range toc {
		b.WriteString(`<p><a href="#` + html.EscapeString(e.id) + `">` + html.EscapeString(e.name) + `</a></p>`)
	}
	b.WriteString(`</div>`)
	b.WriteString(fmt.Sprintf(`<div class="col-md-%d">`, gridUnits-r.tocWidth))
	b.WriteString(content)
	b.WriteString(`</div>`)
	b.WriteString(`</div></div>`)
	return b.String()
}
