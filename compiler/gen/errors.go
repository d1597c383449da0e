package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrIO indicates that reading the schema or writing the output failed.
	ErrIO = errors.New("gqldsl: i/o failure")
	// ErrParse indicates that the schema document could not be parsed.
	ErrParse = errors.New("gqldsl: schema parse failure")
	// ErrMissingDefinition indicates that a required definition is absent.
	ErrMissingDefinition = errors.New("gqldsl: missing definition")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("gqldsl: invalid configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("gqldsl: code generation failed")
)

// IOError reports a failure to read the schema file or write the output.
type IOError struct {
	Path  string
	Op    string // "read" or "write"
	Cause error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	var b strings.Builder
	b.WriteString("gqldsl: i/o error")
	if e.Op != "" {
		b.WriteString(" on ")
		b.WriteString(e.Op)
	}
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for IOError.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, cause error) *IOError {
	return &IOError{
		Path:  path,
		Op:    op,
		Cause: cause,
	}
}

// ParseError reports that the schema document was rejected by the parser.
type ParseError struct {
	Source string
	Cause  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("gqldsl: parse error")
	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError.
func NewParseError(source string, cause error) *ParseError {
	return &ParseError{
		Source: source,
		Cause:  cause,
	}
}

// MissingDefinitionError reports that a definition the generator requires,
// such as the query root type, is not present in the schema.
//
// No generation path returns it at the moment.
type MissingDefinitionError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingDefinitionError) Error() string {
	if e.Name == "" {
		return "gqldsl: missing definition"
	}
	return fmt.Sprintf("gqldsl: missing definition for %q", e.Name)
}

// Is reports whether the target matches the sentinel error for MissingDefinitionError.
func (e *MissingDefinitionError) Is(target error) bool {
	return target == ErrMissingDefinition
}

// NewMissingDefinitionError creates a new MissingDefinitionError.
func NewMissingDefinitionError(name string) *MissingDefinitionError {
	return &MissingDefinitionError{Name: name}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("gqldsl: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("gqldsl: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("gqldsl: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsIOError reports whether the error is an IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// IsParseError reports whether the error is a ParseError.
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsMissingDefinitionError reports whether the error is a MissingDefinitionError.
func IsMissingDefinitionError(err error) bool {
	var missingErr *MissingDefinitionError
	return errors.As(err, &missingErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
