package report

import (
	"errors"
	"html/template"
	"io"
	"strings"
	"testing"
)

// pngFigure is a raster figure writing a fixed PNG header, failing on demand.
type pngFigure struct {
	fail bool
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func (f pngFigure) EncodePNG(w io.Writer) error {
	if f.fail {
		return errors.New("encode failed")
	}
	_, err := w.Write(pngHeader)
	return err
}

// docFigure is an interactive figure writing a minimal standalone page.
type docFigure struct {
	fail bool
}

func (f docFigure) WriteDocument(w io.Writer) error {
	if f.fail {
		return errors.New("serialize failed")
	}
	_, err := io.WriteString(w, "<!DOCTYPE html>\n<html><body>interactive</body></html>")
	return err
}

// sizedDocFigure declares its own display height.
type sizedDocFigure struct {
	docFigure
	h int
}

func (f sizedDocFigure) PixelHeight() int { return f.h }

// hybridFigure serializes to HTML and encodes its own PNG thumbnail.
type hybridFigure struct {
	docFigure
	png pngFigure
}

func (f hybridFigure) EncodePNG(w io.Writer) error { return f.png.EncodePNG(w) }

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		check func(t *testing.T, el Element)
	}{
		{
			name:  "element passes through with tag attached",
			value: Text("already an element"),
			check: func(t *testing.T, el Element) {
				te, ok := el.(*TextElement)
				if !ok {
					t.Fatalf("got %T, want *TextElement", el)
				}
				if te.tag != "tag" {
					t.Errorf("tag = %q, want %q", te.tag, "tag")
				}
			},
		},
		{
			name:  "template.HTML becomes markup",
			value: template.HTML("<b>raw</b>"),
			check: func(t *testing.T, el Element) {
				me, ok := el.(*MarkupElement)
				if !ok {
					t.Fatalf("got %T, want *MarkupElement", el)
				}
				if me.fragment != "<b>raw</b>" {
					t.Errorf("fragment = %q", me.fragment)
				}
			},
		},
		{
			name:  "string becomes text",
			value: "plain",
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*TextElement); !ok {
					t.Fatalf("got %T, want *TextElement", el)
				}
			},
		},
		{
			name:  "raster capability becomes image",
			value: pngFigure{},
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*ImageElement); !ok {
					t.Fatalf("got %T, want *ImageElement", el)
				}
			},
		},
		{
			name:  "raster wins over document for hybrid figures",
			value: hybridFigure{},
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*ImageElement); !ok {
					t.Fatalf("got %T, want *ImageElement", el)
				}
			},
		},
		{
			name:  "document capability becomes embedded document",
			value: docFigure{},
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*DocumentElement); !ok {
					t.Fatalf("got %T, want *DocumentElement", el)
				}
			},
		},
		{
			name:  "unrecognized value degrades to passthrough",
			value: struct{ X int }{X: 7},
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*PassthroughElement); !ok {
					t.Fatalf("got %T, want *PassthroughElement", el)
				}
			},
		},
		{
			name:  "nil degrades to passthrough",
			value: nil,
			check: func(t *testing.T, el Element) {
				if _, ok := el.(*PassthroughElement); !ok {
					t.Fatalf("got %T, want *PassthroughElement", el)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Resolve(tt.value, "tag"))
		})
	}
}

func TestResolve_PassthroughRendersAtRenderTime(t *testing.T) {
	t.Parallel()

	el := Resolve(struct{ A, B string }{"x", "<y>"}, "t")
	out, err := el.render(&renderContext{})
	if err != nil {
		t.Fatalf("render() unexpected error: %v", err)
	}
	if !strings.Contains(out, "x") || strings.Contains(out, "<y>") {
		t.Errorf("passthrough not escaped: %q", out)
	}
	if !strings.Contains(out, "&lt;y&gt;") {
		t.Errorf("expected escaped value, got %q", out)
	}
}
