// Package compiler runs the gqldsl generation pipeline: it reads a schema,
// indexes its object types, emits the DSL and writes the result.
package compiler

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/gqldsl/compiler/gen"
	"github.com/syssam/gqldsl/compiler/load"
)

// LoadIndex reads and parses the schema at path and returns its object
// type index.
func LoadIndex(path string) (*load.TypeIndex, error) {
	src, err := load.ReadSource(path)
	if err != nil {
		return nil, gen.NewIOError("read", path, err)
	}
	defs, err := load.ParseSchema(src)
	if err != nil {
		return nil, gen.NewParseError(src.Name, err)
	}
	idx := load.NewTypeIndex(defs)
	slog.Debug("schema indexed",
		slog.String("schema", path),
		slog.Int("definitions", len(defs)),
		slog.Int("types", idx.Len()),
	)
	return idx, nil
}

// Source runs one generation pass and returns the formatted Go source.
// Nothing is written to disk.
func Source(cfg *gen.Config) ([]byte, error) {
	if cfg == nil {
		return nil, gen.NewConfigError("Config", nil, "config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	idx, err := LoadIndex(cfg.Schema)
	if err != nil {
		return nil, err
	}
	return gen.NewJenniferGenerator(idx, cfg).Source()
}

// Generate runs one generation pass and writes the result to cfg.Target.
// The target is left untouched when any step fails.
func Generate(cfg *gen.Config) error {
	if cfg != nil && cfg.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target path in config")
	}
	out, err := Source(cfg)
	if err != nil {
		return err
	}
	if err := gen.WriteFile(cfg.Target, out); err != nil {
		return err
	}
	slog.Info("generated",
		slog.String("schema", cfg.Schema),
		slog.String("target", cfg.Target),
		slog.Int("bytes", len(out)),
	)
	return nil
}

// GenerateAll runs Generate for every config. Passes are independent and
// run concurrently with at most workers in flight; a non-positive value
// means GOMAXPROCS. The first failure cancels passes that have not started
// yet and is returned.
func GenerateAll(ctx context.Context, cfgs []*gen.Config, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(workers)
	for _, cfg := range cfgs {
		cfg := cfg
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return Generate(cfg)
			}
		})
	}
	return errg.Wait()
}
