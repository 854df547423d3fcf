package report

import (
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"
)

// RasterFigure is the capability recognized as a static plot: anything
// that can encode itself as a PNG. *gg.Context satisfies it directly.
type RasterFigure interface {
	EncodePNG(w io.Writer) error
}

// DocumentFigure is the capability recognized as an interactive figure:
// it serializes to a standalone HTML document. A figure that also
// implements RasterFigure provides its own thumbnail bitmap.
type DocumentFigure interface {
	WriteDocument(w io.Writer) error
}

// PixelHeighter is optionally implemented by document figures that
// declare their own display height for inline-frame embedding.
type PixelHeighter interface {
	PixelHeight() int
}

// Snapshotter produces a PNG rendering of a materialized HTML document.
// It is consulted for document thumbnails when the figure itself has no
// raster capability. The snapshot subpackage provides a headless-Chrome
// implementation.
type Snapshotter interface {
	Snapshot(htmlPath string) ([]byte, error)
}

// ImageElement materializes a raster figure into the asset directory and
// renders an anchor-wrapped thumbnail with a caption row.
type ImageElement struct {
	elementBase
	fig RasterFigure
}

// Image creates an image element from any PNG-encodable figure.
func Image(fig RasterFigure) *ImageElement {
	return &ImageElement{fig: fig}
}

// WithHeight sets an explicit pixel height for the rendered image.
func (e *ImageElement) WithHeight(px int) *ImageElement {
	e.height = px
	return e
}

// WithWidth sets an explicit width attribute (e.g. "50%" or "640").
func (e *ImageElement) WithWidth(w string) *ImageElement {
	e.width = w
	return e
}

func (e *ImageElement) render(rc *renderContext) (string, error) {
	fsPath, href := rc.assets.fileName("png")
	if err := writeAsset(fsPath, e.fig.EncodePNG); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<div>`)
	b.WriteString(`<a href="` + html.EscapeString(href) + `" target="_blank">`)
	b.WriteString(`<img src="` + html.EscapeString(href) + `"` + e.imgAttrs() + ` class="text-center"/>`)
	b.WriteString(`</a>`)
	b.WriteString(captionRow(e.tag, ""))
	b.WriteString(`</div>`)
	return b.String(), nil
}

// DocumentElement materializes an interactive sub-document. With
// thumbnails enabled it additionally writes a bitmap rendering and
// displays that, linking out to the interactive file; otherwise the
// document is embedded through an inline frame.
type DocumentElement struct {
	elementBase
	fig DocumentFigure
}

// Document creates an embedded-document element from any figure that
// serializes to standalone HTML.
func Document(fig DocumentFigure) *DocumentElement {
	return &DocumentElement{fig: fig}
}

// WithHeight sets an explicit pixel height for the inline frame or
// thumbnail. Without it the frame is sized to the figure's own declared
// height, if any.
func (e *DocumentElement) WithHeight(px int) *DocumentElement {
	e.height = px
	return e
}

// WithWidth sets an explicit width attribute (e.g. "50%" or "640").
func (e *DocumentElement) WithWidth(w string) *DocumentElement {
	e.width = w
	return e
}

func (e *DocumentElement) render(rc *renderContext) (string, error) {
	fsPath, href := rc.assets.fileName("html")
	if err := writeAsset(fsPath, e.fig.WriteDocument); err != nil {
		return "", err
	}

	display, err := e.renderDisplay(rc, fsPath, href)
	if err != nil {
		return "", err
	}
	return `<div>` + display + captionRow(e.tag, href) + `</div>`, nil
}

// renderDisplay picks the thumbnail or inline-frame presentation.
func (e *DocumentElement) renderDisplay(rc *renderContext, fsPath, href string) (string, error) {
	if rc.thumbnails {
		pngFS := strings.TrimSuffix(fsPath, ".html") + ".png"
		pngHref := strings.TrimSuffix(href, ".html") + ".png"

		switch {
		case e.rasterFigure() != nil:
			if err := writeAsset(pngFS, e.rasterFigure().EncodePNG); err != nil {
				return "", err
			}
		case rc.snap != nil:
			png, err := rc.snap.Snapshot(fsPath)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrSnapshot, err)
			}
			if err := os.WriteFile(pngFS, png, 0o600); err != nil {
				return "", fmt.Errorf("%w: %v", ErrAssetWrite, err)
			}
		default:
			// No bitmap source available: degrade to the inline frame.
			return e.renderFrame(href), nil
		}

		return `<a href="` + html.EscapeString(href) + `" target="_blank">` +
			`<img src="` + html.EscapeString(pngHref) + `"` + e.imgAttrs() + ` class="text-center"/>` +
			`</a>`, nil
	}

	return e.renderFrame(href), nil
}

// renderFrame embeds the interactive document directly, sized by the
// explicit height override or the figure's declared height.
func (e *DocumentElement) renderFrame(href string) string {
	h := e.height
	if h == 0 {
		if ph, ok := e.fig.(PixelHeighter); ok {
			h = ph.PixelHeight()
		}
	}
	attrs := ` width="100%"`
	if h > 0 {
		attrs += ` height="` + strconv.Itoa(h) + `"`
	}
	return `<iframe src="` + html.EscapeString(href) + `"` + attrs + ` class="text-center"></iframe>`
}

func (e *DocumentElement) rasterFigure() RasterFigure {
	if rf, ok := e.fig.(RasterFigure); ok {
		return rf
	}
	return nil
}

// writeAsset creates the file and streams the figure's bytes into it.
func writeAsset(fsPath string, write func(io.Writer) error) error {
	f, err := os.Create(fsPath) // #nosec G304 -- path is built from the caller's report path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrAssetWrite, err)
	}
	return nil
}

// captionRow renders the centered caption under a figure. A non-empty
// extHref appends an icon linking to the externally materialized file.
func captionRow(tag, extHref string) string {
	var b strings.Builder
	b.WriteString(`<p class="text-center" style="color:#555;">`)
	b.WriteString(html.EscapeString(tag))
	if extHref != "" {
		b.WriteString(` <a href="` + html.EscapeString(extHref) + `" target="_blank">`)
		b.WriteString(`<i class="fa-solid fa-up-right-from-square text-center"></i></a>`)
	}
	b.WriteString(`</p>`)
	return b.String()
}
