package report

import (
	"fmt"
	"strings"
)

// Entry pairs a display tag with a raw content value for tagged layouts.
type Entry struct {
	Tag   string
	Value any
}

// Row is a layout container: one grid row holding one resolved element
// per column, every column sharing the same width class.
type Row struct {
	class    string
	elements []Element
}

// colClass maps a column count to its grid width class.
func colClass(n int) string {
	switch {
	case n <= 1:
		return "xl-12"
	case n == 2:
		return "lg-6"
	case n == 3:
		return "lg-4"
	case n == 4:
		return "lg-3"
	case n <= 6:
		return "lg-2"
	default:
		return "lg-1"
	}
}

// Cols lays the given values out in a single row, one column each, with
// the column width derived from the number of values. Tags are the
// positional defaults "(0)", "(1)", ...
func Cols(values ...any) *Row {
	return newRow(colClass(len(values)), positional(values))
}

// ColsTagged is the tagged form of Cols: entry order is preserved and
// each value renders under its caller-supplied tag. Entries with an
// empty tag fall back to the positional default.
func ColsTagged(entries ...Entry) *Row {
	for i := range entries {
		if entries[i].Tag == "" {
			entries[i].Tag = positionalTag(i)
		}
	}
	return newRow(colClass(len(entries)), entries)
}

// Cols1, Cols2 and Cols3 are fixed presets with hard-coded column
// classes. The entry count is not validated against the preset width;
// callers are responsible for matching them.

// Cols1 lays values out at full row width.
func Cols1(values ...any) *Row { return newRow("xl-12", positional(values)) }

// Cols2 lays values out at half row width.
func Cols2(values ...any) *Row { return newRow("lg-6", positional(values)) }

// Cols3 lays values out at a third of the row width.
func Cols3(values ...any) *Row { return newRow("lg-4", positional(values)) }

func positional(values []any) []Entry {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Tag: positionalTag(i), Value: v}
	}
	return entries
}

func positionalTag(i int) string { return fmt.Sprintf("(%d)", i) }

// newRow resolves every entry value into its element variant.
func newRow(class string, entries []Entry) *Row {
	r := &Row{class: class, elements: make([]Element, 0, len(entries))}
	for _, e := range entries {
		r.elements = append(r.elements, Resolve(e.Value, e.Tag))
	}
	return r
}

func (r *Row) render(rc *renderContext) (string, error) {
	var cols strings.Builder
	for _, el := range r.elements {
		frag, err := el.render(rc)
		if err != nil {
			return "", err
		}
		cols.WriteString(`<div class="col-` + r.class + `">` + frag + `</div>`)
	}
	return `<div class="container-fluid"><div class="row">` + cols.String() + `</div></div>`, nil
}
