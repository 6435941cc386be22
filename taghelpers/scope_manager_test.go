package taghelpers

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestScopeManager_BeginCreatesContext(t *testing.T) {
	sm := NewScopeManager()
	ec := sm.Begin("p")
	if ec.TagName() != "p" {
		t.Errorf("TagName() = %q, want %q", ec.TagName(), "p")
	}
	if sm.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", sm.Depth())
	}
}

func TestScopeManager_BeginCanNest(t *testing.T) {
	sm := NewScopeManager()
	sm.Begin("p")
	ec := sm.Begin("div")
	if ec.TagName() != "div" {
		t.Errorf("TagName() = %q, want %q", ec.TagName(), "div")
	}
	if sm.Current() != ec {
		t.Error("Current() is not the innermost context")
	}
}

func TestScopeManager_EndReturnsParent(t *testing.T) {
	sm := NewScopeManager()
	outer := sm.Begin("p")
	sm.Begin("div")

	ec, err := sm.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if ec != outer || ec.TagName() != "p" {
		t.Errorf("End() returned %v, want outer context", ec)
	}
}

func TestScopeManager_EndReturnsNilWhenNoScopeLeft(t *testing.T) {
	sm := NewScopeManager()
	sm.Begin("p")
	sm.Begin("div")

	if _, err := sm.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	ec, err := sm.End()
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if ec != nil {
		t.Errorf("End() = %v, want nil", ec)
	}
	if sm.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", sm.Depth())
	}
}

func TestScopeManager_EndWithoutBegin(t *testing.T) {
	sm := NewScopeManager()

	ec, err := sm.End()
	if err == nil {
		t.Fatal("End() on empty manager did not fail")
	}
	if ec != nil {
		t.Errorf("End() = %v, want nil", ec)
	}
	if !errors.Is(err, ErrUnbalancedScope) {
		t.Errorf("errors.Is(err, ErrUnbalancedScope) = false for %v", err)
	}
	var ue *UnbalancedScopeError
	if !errors.As(err, &ue) {
		t.Fatalf("error type = %T, want *UnbalancedScopeError", err)
	}
	want := "Must call 'ScopeManager.Begin' before calling 'ScopeManager.End'."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestScopeManager_Reusable(t *testing.T) {
	sm := NewScopeManager()
	for range 3 {
		sm.Begin("section")
		if _, err := sm.End(); err != nil {
			t.Fatalf("End() error = %v", err)
		}
	}
	if _, err := sm.End(); !errors.Is(err, ErrUnbalancedScope) {
		t.Errorf("End() error = %v, want ErrUnbalancedScope", err)
	}
}

func TestScopeManager_ContextsAreIndependent(t *testing.T) {
	sm := NewScopeManager()
	outer := sm.Begin("div")
	outer.AddHTMLAttribute("class", "outer")
	inner := sm.Begin("span")

	if inner.AllAttributes().Len() != 0 || inner.HTMLAttributes().Len() != 0 {
		t.Error("inner context inherited attributes from outer one")
	}
}

func TestScopeManager_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sm := NewScopeManager(WithLogger(zap.New(core)))

	sm.Begin("p")
	if _, err := sm.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	if entries[0].Message != "Scope begin" || entries[1].Message != "Scope end" {
		t.Errorf("messages = %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[0].ContextMap()["tag"] != "p" {
		t.Errorf("tag field = %v", entries[0].ContextMap()["tag"])
	}
}
