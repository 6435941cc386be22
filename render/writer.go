package render

import (
	"html"
	"iter"
	"strings"

	"thr/taghelpers"
)

func writeStartTag(b *strings.Builder, tag string, attrs iter.Seq2[string, string], selfClosing bool) {
	b.WriteByte('<')
	b.WriteString(tag)
	for name, value := range attrs {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}
	if selfClosing {
		b.WriteString(" /")
	}
	b.WriteByte('>')
}

func writeEndTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// writeOutput serializes element produced by tag helpers.
func writeOutput(b *strings.Builder, out *taghelpers.TagHelperOutput, content string, void bool) {
	if out.IsSuppressed() {
		return
	}
	if out.TagName != "" {
		writeStartTag(b, out.TagName, out.Attributes.All(), out.SelfClosing)
		if out.SelfClosing || void {
			return
		}
	}
	b.WriteString(out.PreContent.String())
	b.WriteString(content)
	b.WriteString(out.PostContent.String())
	if out.TagName != "" {
		writeEndTag(b, out.TagName)
	}
}
