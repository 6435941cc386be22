package helpers

import (
	"context"

	"thr/config"
	"thr/taghelpers"
)

// StaticAttributeTagHelper adds configured attribute to element output.
// Existing attribute is kept unless Override is set.
type StaticAttributeTagHelper struct {
	config.StaticAttribute
}

func (h *StaticAttributeTagHelper) Process(_ context.Context, thc *taghelpers.TagHelperContext, out *taghelpers.TagHelperOutput) error {
	if !h.Override && out.Attributes.Has(h.Name) {
		return nil
	}
	out.Attributes.Set(h.Name, h.Value)
	thc.AllAttributes.Set(h.Name, h.Value)
	return nil
}
