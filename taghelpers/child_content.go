package taghelpers

import (
	"context"
	"sync"
)

// ChildContentFunc renders element children and returns resulting markup.
type ChildContentFunc func(ctx context.Context) (string, error)

// childContent is a single-assignment cell around ChildContentFunc. The
// function is executed at most once, callers arriving while it runs block
// until the result is ready. Errors are cached the same way as content.
type childContent struct {
	once    sync.Once
	render  ChildContentFunc
	content string
	err     error
}

func (c *childContent) get(ctx context.Context) (string, error) {
	c.once.Do(func() {
		if c.render == nil {
			return
		}
		c.content, c.err = c.render(ctx)
	})
	return c.content, c.err
}
