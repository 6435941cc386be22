// Package render drives tag helper execution over HTML templates.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"thr/registry"
	"thr/taghelpers"
)

// Renderer walks template markup and lets registered tag helpers transform
// elements they are attached to.
type Renderer struct {
	reg *registry.Registry
	log *zap.Logger
}

func New(reg *registry.Registry, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{reg: reg, log: log}
}

// Render reads template from src and writes result to dst. Source encoding
// is detected from BOM and meta tags, output is always UTF-8.
func (r *Renderer) Render(ctx context.Context, dst io.Writer, src io.Reader) error {
	in, err := charset.NewReader(src, "text/html")
	if errors.Is(err, io.EOF) {
		// empty template renders to nothing
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to detect template encoding: %w", err)
	}
	doc, err := parse(in)
	if err != nil {
		return fmt.Errorf("unable to parse template: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate render id: %w", err)
	}
	log := r.log.With(zap.Stringer("render", id))
	if ce := log.Check(zap.DebugLevel, "Parsed template"); ce != nil {
		ce.Write(zap.String("tree", dumpTree(doc)))
	}

	p := &pass{
		reg:    r.reg,
		scopes: taghelpers.NewScopeManager(taghelpers.WithLogger(log.Named("scope"))),
		log:    log,
	}
	var b strings.Builder
	if err := p.renderNodes(ctx, &b, doc.children); err != nil {
		return err
	}
	if depth := p.scopes.Depth(); depth != 0 {
		// this should never happen
		return fmt.Errorf("%d tag helper scope(s) left open after rendering", depth)
	}
	log.Debug("Template rendered", zap.Int("elements", p.processed))

	_, err = io.WriteString(dst, b.String())
	return err
}

// RenderString is Render for in-memory templates.
func (r *Renderer) RenderString(ctx context.Context, src string) (string, error) {
	var b strings.Builder
	if err := r.Render(ctx, &b, strings.NewReader(src)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// pass holds state of a single Render call.
type pass struct {
	reg       *registry.Registry
	scopes    *taghelpers.ScopeManager
	log       *zap.Logger
	processed int
}

func (p *pass) renderNodes(ctx context.Context, b *strings.Builder, nodes []*node) error {
	for _, n := range nodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n.kind == rawNode {
			b.WriteString(n.raw)
			continue
		}
		if err := p.renderElement(ctx, b, n); err != nil {
			return err
		}
	}
	return nil
}

func (p *pass) renderElement(ctx context.Context, b *strings.Builder, n *node) error {
	helpers := p.reg.Resolve(n.tag, n.hasAttr)
	if len(helpers) == 0 {
		b.WriteString(n.raw)
		if err := p.renderNodes(ctx, b, n.children); err != nil {
			return err
		}
		b.WriteString(n.endRaw)
		return nil
	}

	parent := p.scopes.Current()
	ec := p.scopes.Begin(n.tag)
	for _, a := range n.attrs {
		ec.AddHTMLAttribute(a.Key, a.Val)
	}
	for _, h := range helpers {
		ec.Add(h)
	}
	ec.SetChildContent(func(ctx context.Context) (string, error) {
		var cb strings.Builder
		if err := p.renderNodes(ctx, &cb, n.children); err != nil {
			return "", err
		}
		return cb.String(), nil
	})

	out := taghelpers.NewTagHelperOutput(n.tag, ec.HTMLAttributes().Clone())
	out.SelfClosing = n.selfClosing
	thc := ec.TagHelperContext()
	for _, h := range taghelpers.ExecutionOrder(ec.TagHelpers()) {
		if err := h.Process(ctx, thc, out); err != nil {
			p.log.Debug("Tag helper failed", zap.String("tag", n.tag), zap.String("helper", fmt.Sprintf("%T", h)), zap.Error(err))
			return err
		}
		if out.IsSuppressed() {
			break
		}
	}

	content, ok := out.Content()
	if !ok && !out.IsSuppressed() {
		var err error
		if content, err = ec.GetChildContent(ctx); err != nil {
			return err
		}
	}
	writeOutput(b, out, content, isVoid(n.tag))
	p.processed++

	resumed, err := p.scopes.End()
	if err != nil {
		return err
	}
	if resumed != parent {
		// this should never happen
		return fmt.Errorf("tag helper scope mismatch after <%s>", n.tag)
	}
	return nil
}
