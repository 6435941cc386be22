package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "%s = %d", []any{"count", 5}, "  count = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "raw", "", "raw: \n"},
		{"whitespace is visible", 1, "raw", "\n  ", "  raw: \"\\n  \"\n"},
		{"quotes", 0, "raw", `a "b"`, "raw: \"a \\\"b\\\"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Element(t *testing.T) {
	attrs := func(yield func(string, string) bool) {
		if !yield("class", "btn") {
			return
		}
		yield("title", `say "hi"`)
	}

	tw := NewTreeWriter()
	tw.Element(0, "div", nil)
	tw.Element(1, "a", attrs)

	want := "<div>\n  <a class=\"btn\" title=\"say \\\"hi\\\"\">\n"
	if got := tw.String(); got != want {
		t.Errorf("Element() = %q, want %q", got, want)
	}
}

func TestTreeWriter_Tree(t *testing.T) {
	tw := NewTreeWriter()
	tw.Element(0, "ul", nil)
	tw.Element(1, "li", nil)
	tw.TextBlock(2, "raw", "one")

	want := "<ul>\n  <li>\n    raw: \"one\"\n"
	if got := tw.String(); got != want {
		t.Errorf("tree = %q, want %q", got, want)
	}
}
