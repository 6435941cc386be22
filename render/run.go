package render

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"thr/helpers"
	"thr/registry"
	"thr/state"
	"thr/taghelpers"
)

// stdoutDestination makes single template output go to STDOUT.
const stdoutDestination = "-"

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst != stdoutDestination {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if name := cmd.String("environment"); len(name) > 0 {
		env.Cfg.Render.Environment = name
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	reg := registry.New()
	helpers.Register(reg, &env.Cfg.Render, log)
	r := New(reg, log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.String("environment", env.Cfg.Render.Environment))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, r, src, dst, env, log)
}

// process handles rendering independently of CLI framework.
func process(ctx context.Context, r *Renderer, src, dst string, env *state.LocalEnv, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found: %w", err)
	}
	if !fi.Mode().IsDir() {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s)", src)
		}
		return renderFile(ctx, r, filepath.Dir(src), filepath.Base(src), dst, env, log)
	}
	if dst == stdoutDestination {
		return errors.New("directory cannot be rendered to STDOUT")
	}
	return processDir(ctx, r, src, dst, env, log)
}

// processDir renders every template under directory. Failure of a single
// template does not stop processing, except for scope bookkeeping errors
// which indicate a bug.
func processDir(ctx context.Context, r *Renderer, dir, dst string, env *state.LocalEnv, log *zap.Logger) (err error) {
	files, err := collectTemplates(dir, env.Cfg.Render.Extensions)
	if err != nil {
		return fmt.Errorf("unable to scan directory: %w", err)
	}
	if len(files) == 0 {
		log.Warn("No templates found", zap.String("directory", dir))
		return nil
	}

	count := 0
	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if er := renderFile(ctx, r, dir, rel, dst, env, log); er != nil {
			if errors.Is(er, taghelpers.ErrUnbalancedScope) {
				return er
			}
			log.Error("Unable to render template", zap.String("file", rel), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", rel, er))
			continue
		}
		count++
	}
	log.Debug("Directory processed", zap.Int("rendered", count), zap.Int("failed", len(multierr.Errors(err))))
	return err
}

// collectTemplates returns paths relative to dir in natural sort order.
func collectTemplates(dir string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !slices.ContainsFunc(extensions, func(ext string) bool {
			return strings.EqualFold(filepath.Ext(path), ext)
		}) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}

func renderFile(ctx context.Context, r *Renderer, root, rel, dst string, env *state.LocalEnv, log *zap.Logger) (err error) {
	in, err := os.Open(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	defer in.Close()

	if dst == stdoutDestination {
		return r.Render(ctx, os.Stdout, in)
	}

	out, err := buildOutputPath(rel, dst, env)
	if err != nil {
		return err
	}
	if outInfo, er := os.Stat(out); er == nil {
		if inInfo, er := in.Stat(); er == nil && os.SameFile(inInfo, outInfo) {
			return fmt.Errorf("output file is the same as template: %s", out)
		}
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", out)
		}
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	log.Debug("Rendering template", zap.String("file", rel), zap.String("output", out))
	return r.Render(ctx, f, in)
}
