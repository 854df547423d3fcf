package main

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"testing"

	report "github.com/reportkit/go-report"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, `
title: Quarterly numbers
output: out/report.html
tocWidth: 3
sections:
  - header: Revenue
  - columns:
      - tag: Summary
        markdown: "**up** 4%"
      - tag: Raw
        text: see appendix
`)
		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("LoadManifest() error: %v", err)
		}
		if m.Title != "Quarterly numbers" {
			t.Errorf("Title = %q", m.Title)
		}
		if m.TOCWidth != 3 {
			t.Errorf("TOCWidth = %d", m.TOCWidth)
		}
		if len(m.Sections) != 2 {
			t.Fatalf("len(Sections) = %d, want 2", len(m.Sections))
		}
		if m.Sections[0].Header != "Revenue" {
			t.Errorf("Sections[0].Header = %q", m.Sections[0].Header)
		}
		if got := len(m.Sections[1].Columns); got != 2 {
			t.Fatalf("len(Sections[1].Columns) = %d, want 2", got)
		}
		if m.Sections[1].Columns[0].Markdown != "**up** 4%" {
			t.Errorf("Columns[0].Markdown = %q", m.Sections[1].Columns[0].Markdown)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("error = %v, want ErrManifestNotFound", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "title: x\nbogus: y\n")
		_, err := LoadManifest(path)
		if !errors.Is(err, ErrManifestParse) {
			t.Errorf("error = %v, want ErrManifestParse", err)
		}
	})

	t.Run("tocWidth out of range", func(t *testing.T) {
		t.Parallel()

		// Must surface as an error, never reach the panicking option.
		for _, w := range []int{-1, 12, 40} {
			path := writeManifest(t, fmt.Sprintf("title: x\ntocWidth: %d\n", w))
			_, err := LoadManifest(path)
			if !errors.Is(err, ErrBadTOCWidth) {
				t.Errorf("tocWidth %d: error = %v, want ErrBadTOCWidth", w, err)
			}
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeManifest(t, "title: [unclosed\n")
		_, err := LoadManifest(path)
		if !errors.Is(err, ErrManifestParse) {
			t.Errorf("error = %v, want ErrManifestParse", err)
		}
	})
}

func TestColumnValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		column  Column
		wantErr bool
		check   func(t *testing.T, v any)
	}{
		{
			name:   "markdown",
			column: Column{Markdown: "# hi"},
			check: func(t *testing.T, v any) {
				if _, ok := v.(*report.MarkdownElement); !ok {
					t.Errorf("value type = %T, want *report.MarkdownElement", v)
				}
			},
		},
		{
			name:   "text",
			column: Column{Text: "plain"},
			check: func(t *testing.T, v any) {
				if s, ok := v.(string); !ok || s != "plain" {
					t.Errorf("value = %#v, want %q", v, "plain")
				}
			},
		},
		{
			name:   "html",
			column: Column{HTML: "<b>x</b>"},
			check: func(t *testing.T, v any) {
				if h, ok := v.(template.HTML); !ok || h != "<b>x</b>" {
					t.Errorf("value = %#v, want template.HTML", v)
				}
			},
		},
		{
			name:   "image",
			column: Column{Image: "chart.png"},
			check: func(t *testing.T, v any) {
				if _, ok := v.(fileImage); !ok {
					t.Errorf("value type = %T, want fileImage", v)
				}
			},
		},
		{
			name:   "markdown wins over text",
			column: Column{Markdown: "# hi", Text: "plain"},
			check: func(t *testing.T, v any) {
				if _, ok := v.(*report.MarkdownElement); !ok {
					t.Errorf("value type = %T, want *report.MarkdownElement", v)
				}
			},
		},
		{
			name:    "empty column",
			column:  Column{Tag: "Empty"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := columnValue(tt.column)
			if tt.wantErr {
				if !errors.Is(err, ErrEmptyColumn) {
					t.Fatalf("error = %v, want ErrEmptyColumn", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("columnValue() error: %v", err)
			}
			tt.check(t, v)
		})
	}
}
