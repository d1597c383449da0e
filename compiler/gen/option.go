package gen

import (
	"errors"
	"go/token"
)

// Option configures code generation.
type Option func(*Config) error

// WithSchema sets the path of the GraphQL schema document.
func WithSchema(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Schema", nil, "schema path cannot be empty")
		}
		c.Schema = path
		return nil
	}
}

// WithTarget sets the path of the generated file.
func WithTarget(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Target", nil, "target path cannot be empty")
		}
		c.Target = path
		return nil
	}
}

// WithPackage sets the package name of the generated file.
// For example: "dsl".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(pkg) {
			return NewConfigError("Package", pkg, "not a valid Go package name")
		}
		c.Package = pkg
		return nil
	}
}

// WithRuntime sets the import path of the selection runtime the generated
// code calls. It is needed only when the runtime is vendored or forked.
func WithRuntime(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Runtime", nil, "runtime import path cannot be empty")
		}
		c.Runtime = path
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
