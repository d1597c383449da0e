package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syssam/gqldsl/compiler/gen"
)

// DefaultConfigFile is the config file name looked up by the command.
const DefaultConfigFile = "gqldsl.yml"

// ConfigFile is the layout of a gqldsl.yml file.
//
//	runtime: github.com/syssam/gqldsl
//	targets:
//	  - schema: schema.graphql
//	    target: dsl/dsl_gen.go
//	  - schema: admin.graphql
//	    target: admin/dsl_gen.go
//	    package: admin
type ConfigFile struct {
	// Runtime and Header apply to every target that does not set its own.
	Runtime string        `yaml:"runtime,omitempty"`
	Header  string        `yaml:"header,omitempty"`
	Targets []*gen.Config `yaml:"targets"`
}

// LoadConfigFile reads a config file and returns one config per target.
// Relative schema and target paths are resolved against the directory of
// the config file.
func LoadConfigFile(path string) ([]*gen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gen.NewIOError("read", path, err)
	}
	var file ConfigFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, gen.NewConfigError("File", path, "parse config file: "+err.Error())
	}
	if len(file.Targets) == 0 {
		return nil, gen.NewConfigError("Targets", path, "config file declares no targets")
	}
	dir := filepath.Dir(path)
	cfgs := make([]*gen.Config, 0, len(file.Targets))
	var errs []error
	for i, cfg := range file.Targets {
		if cfg == nil {
			errs = append(errs, fmt.Errorf("target %d: %w", i, gen.NewConfigError("Targets", nil, "empty target")))
			continue
		}
		if cfg.Runtime == "" {
			cfg.Runtime = file.Runtime
		}
		if cfg.Header == "" {
			cfg.Header = file.Header
		}
		cfg.Schema = resolve(dir, cfg.Schema)
		cfg.Target = resolve(dir, cfg.Target)
		if cfg.Target == "" {
			errs = append(errs, fmt.Errorf("target %d: %w", i, gen.NewConfigError("Target", nil, "missing target path")))
			continue
		}
		if err := cfg.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("target %d: %w", i, err))
			continue
		}
		cfgs = append(cfgs, cfg)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfgs, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
