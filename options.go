package report

import "go.uber.org/zap"

// Defaults applied by New.
const (
	// DefaultTitle is used when no title option is given.
	DefaultTitle = "Generated report"

	// DefaultTOCWidth is the table-of-contents column width in grid units.
	DefaultTOCWidth = 2
)

// gridUnits is the total column width of one layout row.
const gridUnits = 12

// Option configures a Report.
type Option func(*Report)

// WithTitle sets the page title, rendered both in the document head and
// as the top banner.
func WithTitle(title string) Option {
	return func(r *Report) { r.title = title }
}

// WithThumbnails controls how embedded documents are displayed: as static
// thumbnails linking out to the interactive file (true, the default) or
// as inline frames (false).
func WithThumbnails(enabled bool) Option {
	return func(r *Report) { r.thumbnails = enabled }
}

// WithTOCWidth sets the table-of-contents column width in grid units;
// the content column takes the remainder of the row.
// Panics if w is outside 1..11 (programmer error, similar to time.NewTicker).
func WithTOCWidth(w int) Option {
	if w < 1 || w >= gridUnits {
		panic("report: WithTOCWidth must be between 1 and 11")
	}
	return func(r *Report) { r.tocWidth = w }
}

// WithLogger sets the logger used for the informational message emitted
// on a successful write. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Report) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithSnapshotter installs a fallback raster renderer used to thumbnail
// embedded documents whose figures cannot encode a PNG themselves.
func WithSnapshotter(s Snapshotter) Option {
	return func(r *Report) { r.snap = s }
}
