// Package debug produces human readable dumps of template trees.
package debug

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented tree presentation, two spaces per level.
type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.b.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// TextBlock writes labeled text quoted, so whitespace is visible.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	tw.b.WriteString(encodeText(value))
	tw.b.WriteByte('\n')
}

// Element writes element start tag with quoted attribute values.
func (tw *TreeWriter) Element(depth int, tag string, attrs iter.Seq2[string, string]) {
	tw.indent(depth)
	tw.b.WriteByte('<')
	tw.b.WriteString(tag)
	if attrs != nil {
		for name, value := range attrs {
			tw.b.WriteByte(' ')
			tw.b.WriteString(name)
			tw.b.WriteByte('=')
			tw.b.WriteString(strconv.Quote(value))
		}
	}
	tw.b.WriteString(">\n")
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
