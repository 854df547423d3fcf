package report

import (
	"html"
	"strings"
)

// Fixed page chrome: stylesheet and script references emitted into every
// report head. Not content-dependent.
var (
	chromeStylesheets = []string{
		"https://cdn.jsdelivr.net/npm/bootstrap@5.1.3/dist/css/bootstrap.min.css",
		"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.1.1/css/all.min.css",
		"https://cdn.jsdelivr.net/npm/bootswatch@4.5.2/dist/minty/bootstrap.min.css",
	}
	chromeScripts = []string{
		"https://polyfill.io/v3/polyfill.min.js?features=es6",
	}
)

// mathJaxScript renders TeX math in text columns client-side.
const mathJaxScript = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"

// buildDocument wraps the rendered body in the complete HTML5 page.
func buildDocument(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\"/>\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	for _, href := range chromeStylesheets {
		b.WriteString(`<link rel="stylesheet" href="` + href + `"/>` + "\n")
	}
	for _, src := range chromeScripts {
		b.WriteString(`<script src="` + src + `"></script>` + "\n")
	}
	b.WriteString(`<script src="` + mathJaxScript + `" id="MathJax-script" async></script>` + "\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}
