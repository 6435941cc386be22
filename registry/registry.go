// Package registry maps HTML elements to tag helpers which should process
// them.
package registry

import (
	"strings"

	"thr/taghelpers"
)

// Wildcard matches any element.
const Wildcard = "*"

// Factory produces new tag helper instance for a single element.
type Factory func() taghelpers.TagHelper

type descriptor struct {
	name     string
	tag      string
	required []string
	factory  Factory
}

// Registry keeps tag helper descriptors in registration order.
// NOTE: not to be used concurrently with Register.
type Registry struct {
	descriptors []descriptor
}

func New() *Registry {
	return &Registry{}
}

// Register makes helper produced by factory applicable to elements with
// given tag name (case-insensitive) or to all elements when tag is Wildcard.
func (r *Registry) Register(name, tag string, factory Factory) {
	r.RegisterWithAttributes(name, tag, nil, factory)
}

// RegisterWithAttributes is Register which additionally requires element to
// have all listed attributes.
func (r *Registry) RegisterWithAttributes(name, tag string, required []string, factory Factory) {
	r.descriptors = append(r.descriptors, descriptor{
		name:     name,
		tag:      tag,
		required: required,
		factory:  factory,
	})
}

// Names returns names of registered helpers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		names = append(names, d.name)
	}
	return names
}

// Resolve returns fresh helper instances applicable to the element, in
// registration order. hasAttr reports presence of element attribute, it may
// be nil when element has no attributes.
func (r *Registry) Resolve(tag string, hasAttr func(name string) bool) []taghelpers.TagHelper {
	var helpers []taghelpers.TagHelper
	for _, d := range r.descriptors {
		if d.tag != Wildcard && !strings.EqualFold(d.tag, tag) {
			continue
		}
		if !d.satisfied(hasAttr) {
			continue
		}
		helpers = append(helpers, d.factory())
	}
	return helpers
}

func (d descriptor) satisfied(hasAttr func(name string) bool) bool {
	for _, name := range d.required {
		if hasAttr == nil || !hasAttr(name) {
			return false
		}
	}
	return true
}
