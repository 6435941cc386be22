package helpers

import (
	"context"
	"fmt"
	"strings"

	"thr/taghelpers"
)

// EnvironmentTagHelper renders content of <environment> element only when
// current environment matches its include/exclude lists. The element itself
// is never rendered.
type EnvironmentTagHelper struct {
	Current string
}

// Order makes environment checks run before other helpers so they do not
// waste time on suppressed content.
func (*EnvironmentTagHelper) Order() int {
	return -1000
}

func (h *EnvironmentTagHelper) Process(_ context.Context, thc *taghelpers.TagHelperContext, out *taghelpers.TagHelperOutput) error {
	out.TagName = ""

	if names := namesList(thc.AllAttributes, "exclude"); len(names) > 0 && h.matches(names) {
		out.SuppressOutput()
		return nil
	}
	if names := namesList(thc.AllAttributes, "include"); len(names) > 0 && !h.matches(names) {
		out.SuppressOutput()
	}
	return nil
}

func (h *EnvironmentTagHelper) matches(names []string) bool {
	for _, n := range names {
		if strings.EqualFold(n, h.Current) {
			return true
		}
	}
	return false
}

// namesList splits comma separated attribute value.
func namesList(attrs *taghelpers.Attributes[any], name string) []string {
	v, ok := attrs.Value(name)
	if !ok || v == nil {
		return nil
	}
	var names []string
	for n := range strings.SplitSeq(fmt.Sprint(v), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
