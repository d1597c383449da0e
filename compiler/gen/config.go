package gen

import (
	"go/token"
	"path/filepath"
)

const (
	// DefaultRuntime is the import path of the selection runtime
	// referenced by generated code.
	DefaultRuntime = "github.com/syssam/gqldsl"
	// DefaultHeader is the header comment of generated files.
	DefaultHeader = "Code generated by gqldsl. DO NOT EDIT."
)

// Config holds the settings of one generation pass.
type Config struct {
	// Schema is the path of the GraphQL schema document.
	Schema string `yaml:"schema"`
	// Target is the path of the generated Go file.
	Target string `yaml:"target"`
	// Package is the package name of the generated file. It defaults to
	// the name of the directory containing Target.
	Package string `yaml:"package,omitempty"`
	// Runtime is the import path of the selection runtime.
	Runtime string `yaml:"runtime,omitempty"`
	// Header overrides the header comment of the generated file.
	Header string `yaml:"header,omitempty"`
}

// PackageName returns the package name of the generated file.
func (c *Config) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	if c.Target == "" {
		return ""
	}
	dir, err := filepath.Abs(filepath.Dir(c.Target))
	if err != nil {
		return filepath.Base(filepath.Dir(c.Target))
	}
	return filepath.Base(dir)
}

// RuntimePkg returns the import path of the selection runtime.
func (c *Config) RuntimePkg() string {
	if c.Runtime != "" {
		return c.Runtime
	}
	return DefaultRuntime
}

// HeaderComment returns the header comment of the generated file.
func (c *Config) HeaderComment() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}

// Validate reports whether the config describes a runnable generation pass.
func (c *Config) Validate() error {
	if c.Schema == "" {
		return NewConfigError("Schema", nil, "missing schema path in config")
	}
	pkg := c.PackageName()
	if pkg == "" {
		return NewConfigError("Package", nil, "package name is required when no target is set")
	}
	if !token.IsIdentifier(pkg) {
		return NewConfigError("Package", pkg, "not a valid Go package name")
	}
	return nil
}
