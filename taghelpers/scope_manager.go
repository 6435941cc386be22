package taghelpers

import (
	"go.uber.org/zap"
)

// ScopeManager tracks execution contexts of nested elements. Contexts are
// created by Begin and dropped by matching End in strict LIFO order.
type ScopeManager struct {
	stack []*ExecutionContext
	log   *zap.Logger
}

// ScopeOption configures ScopeManager.
type ScopeOption func(*ScopeManager)

// WithLogger makes ScopeManager trace scope changes at debug level.
func WithLogger(log *zap.Logger) ScopeOption {
	return func(sm *ScopeManager) {
		if log != nil {
			sm.log = log
		}
	}
}

func NewScopeManager(opts ...ScopeOption) *ScopeManager {
	sm := &ScopeManager{log: zap.NewNop()}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Begin starts new scope for element and returns its execution context.
func (sm *ScopeManager) Begin(tagName string) *ExecutionContext {
	ec := NewExecutionContext(tagName)
	sm.stack = append(sm.stack, ec)
	sm.log.Debug("Scope begin", zap.String("tag", tagName), zap.Int("depth", len(sm.stack)))
	return ec
}

// End closes current scope and returns execution context of the enclosing
// one, nil when there is none left. Calling End without matching Begin
// returns UnbalancedScopeError.
func (sm *ScopeManager) End() (*ExecutionContext, error) {
	if len(sm.stack) == 0 {
		return nil, &UnbalancedScopeError{Begin: "ScopeManager.Begin", End: "ScopeManager.End"}
	}
	last := len(sm.stack) - 1
	closed := sm.stack[last]
	sm.stack[last] = nil
	sm.stack = sm.stack[:last]
	sm.log.Debug("Scope end", zap.String("tag", closed.tagName), zap.Int("depth", len(sm.stack)))
	return sm.Current(), nil
}

// Current returns execution context of the innermost scope or nil.
func (sm *ScopeManager) Current() *ExecutionContext {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Depth returns number of active scopes.
func (sm *ScopeManager) Depth() int {
	return len(sm.stack)
}
