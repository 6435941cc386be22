package taghelpers

import (
	"errors"
	"fmt"
)

// ErrUnbalancedScope is matched (errors.Is) by every error reporting End
// without matching Begin.
var ErrUnbalancedScope = errors.New("unbalanced tag helper scope")

// UnbalancedScopeError indicates a bug in the caller driving ScopeManager:
// End was called more times than Begin. It must not be recovered from.
type UnbalancedScopeError struct {
	Begin, End string
}

func (e *UnbalancedScopeError) Error() string {
	return fmt.Sprintf("Must call '%s' before calling '%s'.", e.Begin, e.End)
}

func (e *UnbalancedScopeError) Is(target error) bool {
	return target == ErrUnbalancedScope
}
