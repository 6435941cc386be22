package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"thr/config"
	"thr/state"
)

// Values is a struct that holds variables available for output name
// template expansion.
type Values struct {
	Name        string
	Dir         string
	Ext         string
	Environment string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildOutputPath returns output file path for template at rel (relative to
// processed source root). Source directory structure is kept unless NoDirs
// is requested. Output name comes from user template when configured.
func buildOutputPath(rel, dst string, env *state.LocalEnv) (string, error) {
	dir, file := filepath.Split(rel)
	ext := filepath.Ext(file)
	values := Values{
		Name:        strings.TrimSuffix(file, ext),
		Dir:         filepath.ToSlash(filepath.Clean(dir)),
		Ext:         ext,
		Environment: env.Cfg.Render.Environment,
	}

	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, dir)
	}

	name := values.Name
	if tmpl := env.Cfg.Render.OutputNameTemplate; tmpl != "" {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, tmpl, values)
		if err != nil {
			return "", fmt.Errorf("unable to prepare output file name: %w", err)
		}
		if expanded = strings.TrimSpace(expanded); expanded != "" {
			name = filepath.FromSlash(expanded)
		}
	}

	// template may introduce subdirectories
	segments := strings.Split(name, string(filepath.Separator))
	for i, s := range segments {
		if env.Cfg.Render.FileNameTransliterate {
			s = slug.Make(s)
		}
		segments[i] = config.CleanFileName(s)
	}
	return filepath.Join(outDir, filepath.Join(segments...)+ext), nil
}
