package render

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"thr/utils/debug"
)

type nodeKind int

const (
	rawNode nodeKind = iota
	elementNode
)

// node is a minimal markup tree. Everything except elements is kept as raw
// source text so output matches input byte to byte where no tag helper
// intervened.
type node struct {
	kind        nodeKind
	raw         string
	tag         string
	attrs       []html.Attribute
	selfClosing bool
	children    []*node
	// source text of the end tag, empty when element was left unclosed
	endRaw string
}

func (n *node) hasAttr(name string) bool {
	for _, a := range n.attrs {
		if strings.EqualFold(a.Key, name) {
			return true
		}
	}
	return false
}

func isVoid(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img, atom.Input,
		atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	}
	return false
}

// parse builds node tree from HTML source. Unlike html.Parse it does not
// apply HTML5 tree construction rules: no implied elements are added and
// unmatched end tags are kept as text.
func parse(r io.Reader) (*node, error) {
	doc := &node{kind: elementNode}
	stack := []*node{doc}
	top := func() *node { return stack[len(stack)-1] }

	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, err
			}
			return doc, nil

		case html.TextToken, html.CommentToken, html.DoctypeToken:
			top().children = append(top().children, &node{kind: rawNode, raw: string(z.Raw())})

		case html.StartTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			tok := z.Token()
			n := &node{
				kind:        elementNode,
				raw:         raw,
				tag:         tok.Data,
				attrs:       tok.Attr,
				selfClosing: tt == html.SelfClosingTagToken,
			}
			top().children = append(top().children, n)
			if !n.selfClosing && !isVoid(n.tag) {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			matched := false
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == string(name) {
					stack[i].endRaw = raw
					stack = stack[:i]
					matched = true
					break
				}
			}
			if !matched {
				top().children = append(top().children, &node{kind: rawNode, raw: raw})
			}
		}
	}
}

// dumpTree produces readable tree presentation for debug logging.
func dumpTree(doc *node) string {
	tw := debug.NewTreeWriter()
	elements, depth := treeStats(doc, 0)
	tw.Line(0, "template: %d element(s), depth %d", elements, depth)
	var walk func(n *node, depth int)
	walk = func(n *node, depth int) {
		for _, c := range n.children {
			if c.kind == rawNode {
				tw.TextBlock(depth, "raw", c.raw)
				continue
			}
			tw.Element(depth, c.tag, func(yield func(string, string) bool) {
				for _, a := range c.attrs {
					if !yield(a.Key, a.Val) {
						return
					}
				}
			})
			walk(c, depth+1)
		}
	}
	walk(doc, 0)
	return tw.String()
}

// treeStats returns number of elements under n and maximum element nesting.
func treeStats(n *node, level int) (elements, depth int) {
	depth = level
	for _, c := range n.children {
		if c.kind != elementNode {
			continue
		}
		e, d := treeStats(c, level+1)
		elements += e + 1
		depth = max(depth, d)
	}
	return elements, depth
}
