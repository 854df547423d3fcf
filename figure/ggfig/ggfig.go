// Package ggfig draws simple charts onto gg raster contexts. The
// returned *gg.Context encodes itself as a PNG, so chart values plug
// directly into report columns as image elements.
package ggfig

import (
	"math"

	"github.com/fogleman/gg"
)

// margin is the whitespace around the plot area, in pixels.
const margin = 40.0

// Line plots ys as a connected polyline over their indices.
func Line(ys []float64, width, height int) *gg.Context {
	dc := newCanvas(width, height)
	if len(ys) == 0 {
		return dc
	}

	lo, hi := bounds(ys)
	px := func(i int) float64 {
		if len(ys) == 1 {
			return margin
		}
		return margin + float64(i)/float64(len(ys)-1)*plotW(width)
	}
	py := func(v float64) float64 { return scaleY(v, lo, hi, height) }

	dc.SetRGB(0.15, 0.45, 0.75)
	dc.SetLineWidth(2)
	for i := 1; i < len(ys); i++ {
		dc.DrawLine(px(i-1), py(ys[i-1]), px(i), py(ys[i]))
	}
	dc.Stroke()
	return dc
}

// Scatter plots (xs[i], ys[i]) points. Extra values in the longer slice
// are ignored.
func Scatter(xs, ys []float64, width, height int) *gg.Context {
	dc := newCanvas(width, height)
	n := min(len(xs), len(ys))
	if n == 0 {
		return dc
	}

	xlo, xhi := bounds(xs[:n])
	ylo, yhi := bounds(ys[:n])

	dc.SetRGBA(0.15, 0.45, 0.75, 0.6)
	for i := 0; i < n; i++ {
		x := margin + norm(xs[i], xlo, xhi)*plotW(width)
		y := scaleY(ys[i], ylo, yhi, height)
		dc.DrawCircle(x, y, 3)
		dc.Fill()
	}
	return dc
}

// Histogram bins values into the given number of equal-width bins and
// draws them as bars. Fewer than one bin defaults to ten.
func Histogram(values []float64, bins, width, height int) *gg.Context {
	dc := newCanvas(width, height)
	if len(values) == 0 {
		return dc
	}
	if bins < 1 {
		bins = 10
	}

	lo, hi := bounds(values)
	counts := make([]int, bins)
	for _, v := range values {
		i := int(norm(v, lo, hi) * float64(bins))
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}

	peak := 0
	for _, c := range counts {
		if c > peak {
			peak = c
		}
	}

	barW := plotW(width) / float64(bins)
	base := float64(height) - margin
	dc.SetRGBA(0.15, 0.45, 0.75, 0.8)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		barH := float64(c) / float64(peak) * plotH(height)
		dc.DrawRectangle(margin+float64(i)*barW+1, base-barH, barW-2, barH)
		dc.Fill()
	}
	return dc
}

// newCanvas creates a white canvas with plain black axes.
func newCanvas(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, float64(height)-margin, float64(width)-margin, float64(height)-margin)
	dc.DrawLine(margin, margin, margin, float64(height)-margin)
	dc.Stroke()
	return dc
}

func plotW(width int) float64  { return float64(width) - 2*margin }
func plotH(height int) float64 { return float64(height) - 2*margin }

// bounds returns the finite min/max of vs, padding a degenerate range so
// normalization never divides by zero.
func bounds(vs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

// norm maps v into [0, 1] over [lo, hi], clamping outliers.
func norm(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	n := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, n))
}

// scaleY maps a value to a canvas y coordinate (origin at top).
func scaleY(v, lo, hi float64, height int) float64 {
	return float64(height) - margin - norm(v, lo, hi)*plotH(height)
}
