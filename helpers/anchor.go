package helpers

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/net/html"

	"thr/taghelpers"
)

// AnchorTagHelper gives headings an id derived from their text so they
// could be linked to.
type AnchorTagHelper struct{}

func (*AnchorTagHelper) Process(ctx context.Context, thc *taghelpers.TagHelperContext, out *taghelpers.TagHelperOutput) error {
	if thc.AllAttributes.Has("id") {
		return nil
	}
	content, err := thc.GetChildContent(ctx)
	if err != nil {
		return err
	}
	text, err := textOf(content)
	if err != nil {
		return err
	}
	id := slug.Make(text)
	if id == "" {
		return nil
	}
	out.Attributes.Set("id", id)
	thc.AllAttributes.Set("id", id)
	return nil
}

// textOf strips markup leaving text only.
func textOf(markup string) (string, error) {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return b.String(), nil
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
