// Package report assembles heterogeneous content - plots, images,
// markdown, raw HTML, plain text - into a single static HTML report
// with a table of contents and a responsive multi-column layout.
//
// # Quick Start
//
// Create a report, add content, and write it out:
//
//	r := report.New("out/summary.html", report.WithTitle("Nightly summary"))
//	r.AddElements(
//	    report.Section("Results"),
//	    report.Cols2(chart, "Loss per epoch, lower is better."),
//	    report.Markdown("See the **appendix** for raw data."),
//	)
//	if err := r.Write(""); err != nil {
//	    log.Fatal(err)
//	}
//
// Values added to a report are resolved into typed elements: strings
// become paragraphs, template.HTML fragments pass through verbatim,
// anything that can encode a PNG (for example *gg.Context) becomes an
// image column, anything that writes a standalone HTML document becomes
// an embedded sub-document, and unrecognized values degrade to their
// textual representation. Resolution never fails.
//
// # Layout
//
// Content is arranged in rows of equal-width columns. Cols sizes the
// columns from the number of values; Cols1, Cols2 and Cols3 are fixed
// presets. ColsTagged preserves caller-supplied display tags:
//
//	report.ColsTagged(
//	    report.Entry{Tag: "(a)", Value: scatter},
//	    report.Entry{Tag: "caption", Value: "Figure (a) shows ..."},
//	)
//
// Section headers added at the top level register themselves in a table
// of contents rendered as a side column.
//
// # Assets
//
// Image and sub-document elements are materialized under
// assets/<stem>/ next to the report file and referenced by relative
// paths, so the report and its asset directory must be moved together.
// The asset directory is deleted and rebuilt on every Write: the file
// set on disk always reflects exactly the last write pass.
//
// # Thumbnails
//
// Embedded documents are displayed as static thumbnails linking out to
// the interactive file when thumbnails are enabled (the default). A
// document figure that cannot encode its own PNG can be screenshotted
// through the snapshot subpackage, which drives headless Chrome:
//
//	cap := snapshot.New(30 * time.Second)
//	defer cap.Close()
//	r := report.New(path, report.WithSnapshotter(cap))
//
// Without a snapshotter such documents fall back to an inline frame.
package report
