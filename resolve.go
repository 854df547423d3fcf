package report

import "html/template"

// Resolve maps an arbitrary value to exactly one element variant. The
// first match wins:
//
//  1. an Element is returned as-is with the tag attached
//  2. template.HTML passes through as a raw markup fragment
//  3. a string becomes a paragraph
//  4. a RasterFigure becomes an image column
//  5. a DocumentFigure becomes an embedded sub-document
//  6. anything else degrades to Passthrough text rendering
//
// Resolution never fails: adding heterogeneous content must not crash.
func Resolve(value any, tag string) Element {
	switch v := value.(type) {
	case Element:
		v.setTag(tag)
		return v
	case template.HTML:
		el := Markup(string(v))
		el.setTag(tag)
		return el
	case string:
		el := Text(v)
		el.setTag(tag)
		return el
	}

	if fig, ok := value.(RasterFigure); ok {
		el := Image(fig)
		el.setTag(tag)
		return el
	}
	if fig, ok := value.(DocumentFigure); ok {
		el := Document(fig)
		el.setTag(tag)
		return el
	}

	el := &PassthroughElement{value: value}
	el.setTag(tag)
	return el
}
