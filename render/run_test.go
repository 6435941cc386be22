package render

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"thr/config"
	"thr/helpers"
	"thr/registry"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestCollectTemplates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"page10.html", "page2.html", "page1.HTML", "notes.txt", filepath.Join("sub", "x.htm")} {
		writeFile(t, filepath.Join(dir, name), "<p></p>")
	}

	got, err := collectTemplates(dir, []string{".html", ".htm"})
	if err != nil {
		t.Fatalf("collectTemplates() error = %v", err)
	}
	want := []string{"page1.HTML", "page2.html", "page10.html", filepath.Join("sub", "x.htm")}
	if !slices.Equal(got, want) {
		t.Errorf("collectTemplates() = %v, want %v", got, want)
	}
}

func TestProcess_Directory(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "index.html"), `<h1>Welcome Home</h1><environment include="development">debug</environment>`)
	writeFile(t, filepath.Join(src, "docs", "intro.html"), `<p lang="en-gb">Intro</p>`)

	env := testEnv(config.RenderConfig{
		Environment: "production",
		Extensions:  []string{".html"},
		Helpers:     config.HelpersConfig{Anchors: true, Lang: true, Environment: true},
	})
	log := zaptest.NewLogger(t)
	reg := registry.New()
	helpers.Register(reg, &env.Cfg.Render, log)

	if err := process(context.Background(), New(reg, log), src, dst, env, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "index.html"))
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if got := string(data); got != `<h1 id="welcome-home">Welcome Home</h1>` {
		t.Errorf("index.html = %q", got)
	}
	data, err = os.ReadFile(filepath.Join(dst, "docs", "intro.html"))
	if err != nil {
		t.Fatalf("unable to read output: %v", err)
	}
	if got := string(data); got != `<p lang="en-GB">Intro</p>` {
		t.Errorf("docs/intro.html = %q", got)
	}

	// second run must not overwrite
	err = process(context.Background(), New(reg, log), src, dst, env, log)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("process() error = %v, want already exists", err)
	}

	env.Overwrite = true
	if err := process(context.Background(), New(reg, log), src, dst, env, log); err != nil {
		t.Errorf("process() with overwrite error = %v", err)
	}
}

func TestProcess_SingleFile(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	file := filepath.Join(src, "page.html")
	writeFile(t, file, `<p>x</p>`)

	env := testEnv(config.RenderConfig{Environment: "production", Extensions: []string{".html"}})
	log := zaptest.NewLogger(t)
	if err := process(context.Background(), New(registry.New(), log), file, dst, env, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "page.html")); err != nil {
		t.Errorf("output was not produced: %v", err)
	}
}

func TestProcess_Errors(t *testing.T) {
	env := testEnv(config.RenderConfig{Environment: "production", Extensions: []string{".html"}})
	log := zaptest.NewLogger(t)
	r := New(registry.New(), log)

	if err := process(context.Background(), r, filepath.Join(t.TempDir(), "missing"), t.TempDir(), env, log); err == nil {
		t.Error("expected error for missing source")
	}
	if err := process(context.Background(), r, t.TempDir(), stdoutDestination, env, log); err == nil {
		t.Error("expected error for directory rendered to STDOUT")
	}
}

func TestProcess_OutputSameAsTemplate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.html")
	const src = `<h1>Welcome Home</h1>`
	writeFile(t, file, src)

	env := testEnv(config.RenderConfig{
		Environment: "production",
		Extensions:  []string{".html"},
		Helpers:     config.HelpersConfig{Anchors: true},
	})
	env.Overwrite = true
	log := zaptest.NewLogger(t)
	reg := registry.New()
	helpers.Register(reg, &env.Cfg.Render, log)

	for _, in := range []string{file, dir} {
		err := process(context.Background(), New(reg, log), in, dir, env, log)
		if err == nil || !strings.Contains(err.Error(), "same as template") {
			t.Errorf("process(%q) error = %v, want same as template", in, err)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatalf("unable to read template: %v", err)
		}
		if string(data) != src {
			t.Errorf("template was modified: %q", data)
		}
	}
}

func TestProcess_EmptyTemplate(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "empty.html"), "")

	env := testEnv(config.RenderConfig{Environment: "production", Extensions: []string{".html"}})
	log := zaptest.NewLogger(t)
	if err := process(context.Background(), New(registry.New(), log), src, dst, env, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "empty.html"))
	if err != nil {
		t.Fatalf("output was not produced: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("empty.html = %q, want empty", data)
	}
}
