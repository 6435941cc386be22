package state

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"thr/config"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)

	if env.Log == nil {
		t.Fatal("logger must be usable before configuration is loaded")
	}
	if env.Log.Core().Enabled(zapcore.DebugLevel) || env.Log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("initial logger must discard everything")
	}
	// must not panic
	env.Log.Info("discarded", zap.String("key", "value"))
	env.RestoreStdLog()

	if env.Cfg != nil {
		t.Error("configuration must not be loaded yet")
	}
	if env.Uptime() < 0 {
		t.Errorf("Uptime() = %v", env.Uptime())
	}
	if EnvFromContext(ctx) != env {
		t.Error("same context must yield same environment")
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EnvFromContext() did not panic on context without environment")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_StdLogRoundTrip(t *testing.T) {
	var orig bytes.Buffer
	log.SetOutput(&orig)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	core, logs := observer.New(zapcore.DebugLevel)
	env := EnvFromContext(ContextWithEnv(context.Background()))
	env.Cfg = &config.Config{Version: 1}
	env.Log = zap.New(core)

	for range 2 {
		env.RedirectStdLog()
		log.Print("redirected")
		env.RestoreStdLog()
		log.Print("restored")
	}

	entries := logs.FilterMessage("redirected").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 redirected entries, got %d (all: %v)", len(entries), logs.All())
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("redirected entry level = %v, want info", entries[0].Level)
	}
	if logs.FilterMessage("restored").Len() != 0 {
		t.Error("standard log still redirected after restore")
	}
	if got := bytes.Count(orig.Bytes(), []byte("restored")); got != 2 {
		t.Errorf("original output got %d restored lines, want 2: %q", got, orig.String())
	}
}

func TestLocalEnv_RedirectWithoutLogger(t *testing.T) {
	env := &LocalEnv{}
	env.RedirectStdLog()
	if env.restoreStdLog != nil {
		t.Error("redirect must be skipped without logger")
	}
	// must not panic
	env.RestoreStdLog()
}
