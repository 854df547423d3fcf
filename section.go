package report

import (
	"fmt"
	"html"
	"strings"
	"unicode"
)

// defaultDividerStrength is the divider thickness in pixels.
const defaultDividerStrength = 10

// DividerElement renders a horizontal rule separating report sections.
type DividerElement struct {
	elementBase
	strength int
}

// Divider creates a horizontal rule with the given thickness in pixels.
// Non-positive values use the default.
func Divider(strength int) *DividerElement {
	if strength <= 0 {
		strength = defaultDividerStrength
	}
	return &DividerElement{strength: strength}
}

func (e *DividerElement) render(*renderContext) (string, error) {
	return fmt.Sprintf(`<hr style="height:%dpx;border:none;color:#000;background-color:#000;"/>`, e.strength), nil
}

// SectionHeader is a divider followed by a full-width heading, wrapped in
// a container carrying the section's anchor id. Added at the report top
// level it registers itself in the table of contents; nested inside a
// layout container it renders but is not registered.
type SectionHeader struct {
	elementBase
	name    string
	id      string
	divider *DividerElement
	heading *Row
}

// Section creates a section header for the given display name.
func Section(name string) *SectionHeader {
	return &SectionHeader{
		name:    name,
		id:      anchorID(name),
		divider: Divider(defaultDividerStrength),
		heading: Cols1(Markup("<h2>" + html.EscapeString(name) + "</h2>")),
	}
}

// Name returns the section's display name.
func (s *SectionHeader) Name() string { return s.name }

// AnchorID returns the derived in-page anchor id.
func (s *SectionHeader) AnchorID() string { return s.id }

func (s *SectionHeader) render(rc *renderContext) (string, error) {
	div, err := s.divider.render(rc)
	if err != nil {
		return "", err
	}
	head, err := s.heading.render(rc)
	if err != nil {
		return "", err
	}
	return `<div id="` + html.EscapeString(s.id) + `">` + div + head + `</div>`, nil
}

// anchorID derives the anchor id from a section name: every whitespace
// rune becomes an underscore. Two names mapping to the same id are not
// deduplicated; their TOC links target the same anchor.
func anchorID(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
}
