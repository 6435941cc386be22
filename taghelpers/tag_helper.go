package taghelpers

import (
	"cmp"
	"context"
	"slices"
	"strings"
)

// TagHelper transforms HTML element it is attached to.
type TagHelper interface {
	Process(ctx context.Context, thc *TagHelperContext, out *TagHelperOutput) error
}

// Ordered could be implemented by tag helper to control execution order.
// Helpers with lower order run first, helpers without it have order 0.
type Ordered interface {
	Order() int
}

func order(th TagHelper) int {
	if o, ok := th.(Ordered); ok {
		return o.Order()
	}
	return 0
}

// ExecutionOrder returns helpers sorted for execution. Sorting is stable, so
// registration order is kept for equal orders.
func ExecutionOrder(helpers []TagHelper) []TagHelper {
	sorted := slices.Clone(helpers)
	slices.SortStableFunc(sorted, func(a, b TagHelper) int {
		return cmp.Compare(order(a), order(b))
	})
	return sorted
}

// TagHelperContext is what tag helper sees of the element being processed.
type TagHelperContext struct {
	TagName string
	// AllAttributes is shared with ExecutionContext, changes are visible to
	// helpers executed later.
	AllAttributes *Attributes[any]
	childContent  *childContent
}

// GetChildContent returns rendered children of the element. Child content is
// only rendered once, successive calls return cached result.
func (thc *TagHelperContext) GetChildContent(ctx context.Context) (string, error) {
	return thc.childContent.get(ctx)
}

// TagHelperOutput accumulates element rendering results produced by tag
// helpers.
type TagHelperOutput struct {
	// TagName of the produced element, empty value suppresses start and end
	// tags leaving content only.
	TagName     string
	Attributes  *Attributes[string]
	SelfClosing bool

	PreContent  strings.Builder
	PostContent strings.Builder

	content    string
	contentSet bool
	suppressed bool
}

// NewTagHelperOutput prepares output for element seeding it with markup
// attributes.
func NewTagHelperOutput(tagName string, attrs *Attributes[string]) *TagHelperOutput {
	if attrs == nil {
		attrs = NewAttributes[string]()
	}
	return &TagHelperOutput{TagName: tagName, Attributes: attrs}
}

// SetContent replaces element children.
func (o *TagHelperOutput) SetContent(content string) {
	o.content, o.contentSet = content, true
}

// Content returns content set by helpers if any.
func (o *TagHelperOutput) Content() (string, bool) {
	return o.content, o.contentSet
}

// SuppressOutput drops element with all its content.
func (o *TagHelperOutput) SuppressOutput() {
	o.suppressed = true
	o.TagName = ""
	o.SetContent("")
	o.PreContent.Reset()
	o.PostContent.Reset()
}

func (o *TagHelperOutput) IsSuppressed() bool {
	return o.suppressed
}
