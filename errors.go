package report

import "errors"

// Sentinel errors for report composition and writing.
var (
	// ErrNoOutputPath indicates Write was called without a path resolved
	// either at construction or at the call itself.
	ErrNoOutputPath = errors.New("no output path configured")

	// ErrAssetDir indicates the asset directory could not be deleted or
	// recreated.
	ErrAssetDir = errors.New("asset directory reset failed")

	// ErrAssetWrite indicates an image or sub-document file could not be
	// materialized.
	ErrAssetWrite = errors.New("asset write failed")

	// ErrMarkdownRender indicates Markdown to HTML conversion failed.
	ErrMarkdownRender = errors.New("markdown rendering failed")

	// ErrReportWrite indicates the report file itself could not be written.
	ErrReportWrite = errors.New("report file write failed")

	// ErrSnapshot indicates a document thumbnail could not be captured.
	ErrSnapshot = errors.New("document snapshot failed")
)
