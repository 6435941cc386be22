package helpers

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"thr/taghelpers"
)

// LangTagHelper canonicalizes BCP 47 language tag in lang attribute.
// Malformed tags are kept as is.
type LangTagHelper struct {
	log *zap.Logger
}

func (h *LangTagHelper) Process(_ context.Context, thc *taghelpers.TagHelperContext, out *taghelpers.TagHelperOutput) error {
	value, ok := out.Attributes.Value("lang")
	if !ok || value == "" {
		return nil
	}
	tag, err := language.Parse(value)
	if err != nil {
		h.log.Warn("Ignoring malformed language tag", zap.String("element", thc.TagName), zap.String("lang", value), zap.Error(err))
		return nil
	}
	out.Attributes.Set("lang", tag.String())
	thc.AllAttributes.Set("lang", tag)
	return nil
}
