package report

import (
	"strings"
	"testing"
)

func TestAnchorID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"A B", "A_B"},
		{"Results", "Results"},
		{"two  spaces", "two__spaces"},
		{"tab\there", "tab_here"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := anchorID(tt.name); got != tt.want {
			t.Errorf("anchorID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSection_Render(t *testing.T) {
	t.Parallel()

	out, err := Section("My Results").render(&renderContext{})
	if err != nil {
		t.Fatalf("render() unexpected error: %v", err)
	}

	for _, want := range []string{
		`<div id="My_Results">`,
		`<hr style="height:10px;`,
		`<h2>My Results</h2>`,
		`<div class="col-xl-12">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot: %s", want, out)
		}
	}
}

func TestSection_Accessors(t *testing.T) {
	t.Parallel()

	s := Section("A B")
	if s.Name() != "A B" {
		t.Errorf("Name() = %q, want %q", s.Name(), "A B")
	}
	if s.AnchorID() != "A_B" {
		t.Errorf("AnchorID() = %q, want %q", s.AnchorID(), "A_B")
	}
}

func TestDivider_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		strength int
		want     string
	}{
		{"explicit strength", 4, "height:4px;"},
		{"zero uses default", 0, "height:10px;"},
		{"negative uses default", -3, "height:10px;"},
	}

	for _, tt := range tests {
		out, err := Divider(tt.strength).render(&renderContext{})
		if err != nil {
			t.Fatalf("%s: render() unexpected error: %v", tt.name, err)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("%s: output missing %q\ngot: %s", tt.name, tt.want, out)
		}
	}
}
