package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reportkit/go-report/internal/yamlutil"
)

// Sentinel errors for manifest loading.
var (
	ErrManifestNotFound = errors.New("manifest file not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrBadTOCWidth      = errors.New("manifest tocWidth must be between 1 and 11")
	ErrEmptyColumn      = errors.New("manifest column has no content")
)

// Manifest describes a report to generate: document-wide settings plus an
// ordered list of sections.
type Manifest struct {
	Title      string    `yaml:"title"`
	Output     string    `yaml:"output"`
	Thumbnails *bool     `yaml:"thumbnails"` // nil = default (true)
	TOCWidth   int       `yaml:"tocWidth"`   // 0 = default
	Sections   []Section `yaml:"sections"`
}

// Section is either a section header (Header set) or a row of columns.
// When both are set the header is emitted first.
type Section struct {
	Header  string   `yaml:"header"`
	Columns []Column `yaml:"columns"`
}

// Column holds exactly one kind of content. The first non-empty field
// wins, in the order markdown, text, html, image.
type Column struct {
	Tag      string `yaml:"tag"`
	Markdown string `yaml:"markdown"`
	Text     string `yaml:"text"`
	HTML     string `yaml:"html"`
	Image    string `yaml:"image"` // path to a PNG file copied into the assets
}

// LoadManifest reads and parses a YAML report manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	// WithTOCWidth treats an out-of-range width as programmer error and
	// panics, so manifest input must be range-checked here.
	if m.TOCWidth < 0 || m.TOCWidth > 11 {
		return nil, fmt.Errorf("%w: got %d", ErrBadTOCWidth, m.TOCWidth)
	}
	return &m, nil
}
