package main

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"go.uber.org/zap"

	report "github.com/reportkit/go-report"
	"github.com/reportkit/go-report/snapshot"
)

// run builds and writes the report described by the flags.
func run(flags *cliFlags) error {
	logger := zap.NewNop()
	if flags.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer func() { _ = l.Sync() }()
		logger = l
	}

	if flags.demo {
		return runDemo(flags, logger)
	}

	m, err := LoadManifest(flags.manifest)
	if err != nil {
		return err
	}

	opts := buildOptions(flags, m, logger)
	var closers []io.Closer
	if flags.snapshots {
		cap := snapshot.New(snapshot.DefaultTimeout)
		closers = append(closers, cap)
		opts = append(opts, report.WithSnapshotter(cap))
	}
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	r := report.New(resolveOutput(flags, m), opts...)
	if err := addSections(r, m.Sections); err != nil {
		return err
	}

	if err := r.Write(""); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", resolveOutput(flags, m))
	return nil
}

// buildOptions merges manifest settings with flag overrides.
func buildOptions(flags *cliFlags, m *Manifest, logger *zap.Logger) []report.Option {
	opts := []report.Option{report.WithLogger(logger)}

	title := m.Title
	if flags.title != "" {
		title = flags.title
	}
	if title != "" {
		opts = append(opts, report.WithTitle(title))
	}

	thumbnails := true
	if m.Thumbnails != nil {
		thumbnails = *m.Thumbnails
	}
	if flags.noThumbnails {
		thumbnails = false
	}
	opts = append(opts, report.WithThumbnails(thumbnails))

	tocWidth := m.TOCWidth
	if flags.tocWidth > 0 {
		tocWidth = flags.tocWidth
	}
	if tocWidth > 0 {
		opts = append(opts, report.WithTOCWidth(tocWidth))
	}

	return opts
}

// resolveOutput picks the output path: the flag wins over the manifest.
func resolveOutput(flags *cliFlags, m *Manifest) string {
	if flags.output != "" {
		return flags.output
	}
	return m.Output
}

// addSections translates manifest sections into report rows.
func addSections(r *report.Report, sections []Section) error {
	for _, s := range sections {
		if s.Header != "" {
			r.AddElement(report.Section(s.Header))
		}
		if len(s.Columns) == 0 {
			continue
		}

		entries := make([]report.Entry, 0, len(s.Columns))
		for _, c := range s.Columns {
			value, err := columnValue(c)
			if err != nil {
				return err
			}
			entries = append(entries, report.Entry{Tag: c.Tag, Value: value})
		}
		r.AddElement(report.ColsTagged(entries...))
	}
	return nil
}

// columnValue maps a manifest column to a value the report can resolve.
func columnValue(c Column) (any, error) {
	switch {
	case c.Markdown != "":
		return report.Markdown(c.Markdown), nil
	case c.Text != "":
		return c.Text, nil
	case c.HTML != "":
		return template.HTML(c.HTML), nil // #nosec G203 -- manifest HTML is trusted caller input
	case c.Image != "":
		return fileImage{path: c.Image}, nil
	default:
		return nil, fmt.Errorf("%w: tag %q", ErrEmptyColumn, c.Tag)
	}
}

// fileImage adapts an on-disk PNG into a raster figure: its bytes are
// copied into the report's asset directory at write time.
type fileImage struct {
	path string
}

func (f fileImage) EncodePNG(w io.Writer) error {
	src, err := os.Open(f.path) // #nosec G304 -- image path comes from the manifest
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()
	_, err = io.Copy(w, src)
	return err
}
