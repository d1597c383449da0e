package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/syssam/gqldsl/compiler"
	"github.com/syssam/gqldsl/compiler/gen"
)

type generateCmd struct {
	ctx context.Context
	out io.Writer

	schema  *string
	target  *string
	pkg     *string
	runtime *string
	header  *string
	config  *string
	workers *int
	watch   *bool
}

func addGenerate(ctx context.Context, app *kingpin.Application, out io.Writer) {
	c := &generateCmd{ctx: ctx, out: out}
	cmd := app.Command("generate", "Generate the DSL for one schema or for every target of a config file.").Alias("gen")
	c.schema = cmd.Flag("schema", "Path of the GraphQL schema").Short('s').String()
	c.target = cmd.Flag("target", "Path of the generated file; the source is printed when omitted").Short('o').String()
	c.pkg = cmd.Flag("package", "Package name of the generated file").Short('p').String()
	c.runtime = cmd.Flag("runtime", "Import path of the selection runtime").String()
	c.header = cmd.Flag("header", "Header comment of the generated file").String()
	c.config = cmd.Flag("config", "Path of the config file, used when --schema is not set").
		Short('c').Default(compiler.DefaultConfigFile).Envar("GQLDSL_CONFIG").String()
	c.workers = cmd.Flag("workers", "Number of targets generated in parallel (0 means GOMAXPROCS)").
		Short('w').Default("0").Int()
	c.watch = cmd.Flag("watch", "Regenerate when a schema file changes").Bool()
	cmd.Action(c.run)
}

func (c *generateCmd) run(*kingpin.ParseContext) error {
	cfgs, err := c.configs()
	if err != nil {
		return err
	}
	if len(cfgs) == 1 && cfgs[0].Target == "" {
		if *c.watch {
			return gen.NewConfigError("Target", nil, "--watch requires --target")
		}
		out, err := compiler.Source(cfgs[0])
		if err != nil {
			return err
		}
		_, err = c.out.Write(out)
		return err
	}
	err = compiler.GenerateAll(c.ctx, cfgs, *c.workers)
	if !*c.watch {
		return err
	}
	if err != nil {
		slog.Error("generation failed", slog.Any("error", err))
	}
	return c.watchSchemas(cfgs)
}

// configs returns the generation passes selected by the flags.
func (c *generateCmd) configs() ([]*gen.Config, error) {
	if *c.schema == "" {
		return compiler.LoadConfigFile(*c.config)
	}
	opts := []gen.Option{gen.WithSchema(*c.schema)}
	if *c.target != "" {
		opts = append(opts, gen.WithTarget(*c.target))
	}
	if *c.pkg != "" {
		opts = append(opts, gen.WithPackage(*c.pkg))
	}
	if *c.runtime != "" {
		opts = append(opts, gen.WithRuntime(*c.runtime))
	}
	if *c.header != "" {
		opts = append(opts, gen.WithHeader(*c.header))
	}
	cfg := &gen.Config{}
	if err := cfg.ApplyAll(opts...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return []*gen.Config{cfg}, nil
}

// watchSchemas regenerates the targets of a schema each time it changes,
// until the context is canceled. The directories holding the schemas are
// watched so editors that replace files on save are handled.
func (c *generateCmd) watchSchemas(cfgs []*gen.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	targets := make(map[string][]*gen.Config)
	for _, cfg := range cfgs {
		path, err := filepath.Abs(cfg.Schema)
		if err != nil {
			return gen.NewIOError("watch", cfg.Schema, err)
		}
		if _, ok := targets[path]; !ok {
			if err := w.Add(filepath.Dir(path)); err != nil {
				return gen.NewIOError("watch", filepath.Dir(path), err)
			}
		}
		targets[path] = append(targets[path], cfg)
	}
	slog.Info("watching schemas", slog.Int("schemas", len(targets)))

	for {
		select {
		case <-c.ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfgs, ok := targets[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			slog.Info("schema changed", slog.String("schema", ev.Name), slog.String("op", ev.Op.String()))
			for _, cfg := range cfgs {
				if err := compiler.Generate(cfg); err != nil {
					slog.Error("generation failed", slog.String("target", cfg.Target), slog.Any("error", err))
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", slog.Any("error", err))
		}
	}
}
