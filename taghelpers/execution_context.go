// Package taghelpers keeps track of tag helpers executed for HTML elements
// during page rendering.
package taghelpers

import (
	"context"
	"slices"
)

// ExecutionContext holds everything related to a single HTML element
// processed by tag helpers.
type ExecutionContext struct {
	tagName        string
	htmlAttributes *Attributes[string]
	allAttributes  *Attributes[any]
	tagHelpers     []TagHelper
	childContent   *childContent
}

// NewExecutionContext creates context for element with given tag name.
func NewExecutionContext(tagName string) *ExecutionContext {
	return &ExecutionContext{
		tagName:        tagName,
		htmlAttributes: NewAttributes[string](),
		allAttributes:  NewAttributes[any](),
		childContent:   &childContent{},
	}
}

func (ec *ExecutionContext) TagName() string {
	return ec.tagName
}

// HTMLAttributes returns attributes which came from the page markup.
func (ec *ExecutionContext) HTMLAttributes() *Attributes[string] {
	return ec.htmlAttributes
}

// AllAttributes returns markup attributes together with attributes
// contributed by tag helpers.
func (ec *ExecutionContext) AllAttributes() *Attributes[any] {
	return ec.allAttributes
}

// TagHelpers returns helpers in order they were added.
func (ec *ExecutionContext) TagHelpers() []TagHelper {
	return slices.Clone(ec.tagHelpers)
}

// Add associates tag helper with the element. The same instance may be added
// more than once.
func (ec *ExecutionContext) Add(th TagHelper) {
	ec.tagHelpers = append(ec.tagHelpers, th)
}

// AddHTMLAttribute records markup attribute in both attribute views.
func (ec *ExecutionContext) AddHTMLAttribute(name, value string) {
	ec.htmlAttributes.Set(name, value)
	ec.allAttributes.Set(name, value)
}

// AddTagHelperAttribute records attribute which is visible to tag helpers only.
func (ec *ExecutionContext) AddTagHelperAttribute(name string, value any) {
	ec.allAttributes.Set(name, value)
}

// SetChildContent installs the function rendering element children. It has
// to be called before the first GetChildContent, later calls are ignored.
func (ec *ExecutionContext) SetChildContent(fn ChildContentFunc) {
	if ec.childContent.render == nil {
		ec.childContent.render = fn
	}
}

// GetChildContent returns rendered children. Rendering happens once, every
// following call returns cached result.
func (ec *ExecutionContext) GetChildContent(ctx context.Context) (string, error) {
	return ec.childContent.get(ctx)
}

// TagHelperContext returns the view of this element exposed to tag helpers.
func (ec *ExecutionContext) TagHelperContext() *TagHelperContext {
	return &TagHelperContext{
		TagName:       ec.tagName,
		AllAttributes: ec.allAttributes,
		childContent:  ec.childContent,
	}
}
