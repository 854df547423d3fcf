package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"go.uber.org/zap"

	report "github.com/reportkit/go-report"
	"github.com/reportkit/go-report/figure/ggfig"
)

// runDemo writes a self-contained example report: generated charts, a
// markdown caption, and an embedded interactive document.
func runDemo(flags *cliFlags, logger *zap.Logger) error {
	out := flags.output
	if out == "" {
		out = "demo_report.html"
	}

	opts := []report.Option{
		report.WithTitle("Gauss vs. Cauchy"),
		report.WithLogger(logger),
		report.WithThumbnails(!flags.noThumbnails),
	}

	rng := rand.New(rand.NewSource(42))
	gauss := normalSamples(rng, 200)
	cauchy := cauchySamples(rng, 200)

	r := report.New(out, opts...)
	r.AddElements(
		report.Section("Cauchy distributions have many outliers"),
		report.ColsTagged(
			report.Entry{Tag: "(a) gauss", Value: ggfig.Histogram(gauss, 20, 640, 480)},
			report.Entry{Tag: "(b) cauchy", Value: ggfig.Histogram(cauchy, 20, 640, 480)},
			report.Entry{Tag: "notes", Value: report.Markdown(
				"The Cauchy distribution has **no defined variance**:\n\n" +
					"- its tails decay like \\\\(1/x^2\\\\)\n" +
					"- sample means never converge\n")},
		),

		report.Section("Scatter views"),
		report.Cols2(
			ggfig.Scatter(gauss, cauchy, 640, 480),
			`When \(a \ne 0\), the quadratic \(ax^2+bx+c=0\) has roots `+
				`\[x = {-b \pm \sqrt{b^2-4ac} \over 2a}.\]`,
		),

		report.Section("Running sums"),
		report.Cols2(
			ggfig.Line(runningMean(gauss), 640, 480),
			report.Document(&sineDoc{height: 400}),
		),
	)

	if err := r.Write(""); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", out)
	return nil
}

func normalSamples(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}
	return out
}

func cauchySamples(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		// Ratio of two standard normals is standard Cauchy.
		d := rng.NormFloat64()
		if d == 0 {
			d = 1e-9
		}
		out[i] = rng.NormFloat64() / d
	}
	return out
}

func runningMean(vs []float64) []float64 {
	out := make([]float64, len(vs))
	sum := 0.0
	for i, v := range vs {
		sum += v
		out[i] = sum / float64(i+1)
	}
	return out
}

// sineDoc is a tiny interactive figure: a standalone HTML page that
// animates a sine wave on a canvas. It declares its own display height.
type sineDoc struct {
	height int
}

func (d *sineDoc) PixelHeight() int { return d.height }

func (d *sineDoc) WriteDocument(w io.Writer) error {
	_, err := fmt.Fprintf(w, sineDocPage, d.height, 2*math.Pi)
	return err
}

const sineDocPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"/><title>Sine</title></head>
<body style="margin:0">
<canvas id="c" width="640" height="%d"></canvas>
<script>
const c = document.getElementById("c"), g = c.getContext("2d");
let t = 0;
function draw() {
  g.clearRect(0, 0, c.width, c.height);
  g.beginPath();
  for (let x = 0; x < c.width; x++) {
    const y = c.height / 2 + Math.sin(x / c.width * %f + t) * c.height / 3;
    x === 0 ? g.moveTo(x, y) : g.lineTo(x, y);
  }
  g.strokeStyle = "#2a74bf";
  g.lineWidth = 2;
  g.stroke();
  t += 0.03;
  requestAnimationFrame(draw);
}
draw();
</script>
</body>
</html>
`
