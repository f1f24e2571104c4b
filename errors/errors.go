package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCodec    Phase = "codec"    // lane split/join
	PhaseModel    Phase = "model"    // functional model evaluation
	PhaseTemplate Phase = "template" // macro rendering
	PhaseGenerate Phase = "generate" // test category generation
	PhaseConfig   Phase = "config"   // generator/driver setup
	PhaseWrite    Phase = "write"    // output artifacts
)

// Kind categorizes the error
type Kind string

const (
	KindConfiguration    Kind = "configuration"
	KindNotImplemented   Kind = "not_implemented"
	KindTemplateArgument Kind = "template_argument"
	KindInvalidDomain    Kind = "invalid_domain"
	KindInvalidInput     Kind = "invalid_input"
	KindNotFound         Kind = "not_found"
	KindIO               Kind = "io"
)

// Sentinels for errors.Is. They carry no phase and match on Kind alone.
var (
	ErrConfiguration    = &Error{Kind: KindConfiguration}
	ErrNotImplemented   = &Error{Kind: KindNotImplemented}
	ErrTemplateArgument = &Error{Kind: KindTemplateArgument}
	ErrInvalidDomain    = &Error{Kind: KindInvalidDomain}
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrNotFound         = &Error{Kind: KindNotFound}
)

// Error is the structured error type used throughout the generator
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the element path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Configuration creates a configuration error, e.g. an unsupported lane width
func Configuration(phase Phase, detail string, value any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindConfiguration,
		Detail: detail,
		Value:  value,
	}
}

// NotImplemented reports a generator whose operation was never provided
func NotImplemented(mnemonic string) *Error {
	return &Error{
		Phase:  PhaseGenerate,
		Kind:   KindNotImplemented,
		Path:   []string{mnemonic},
		Detail: "operation not implemented",
	}
}

// TemplateArgument reports a macro parameter missing from the fill arguments
func TemplateArgument(macro, param string) *Error {
	return &Error{
		Phase:  PhaseTemplate,
		Kind:   KindTemplateArgument,
		Path:   []string{macro, param},
		Detail: fmt.Sprintf("required parameter %q not supplied", param),
	}
}

// InvalidDomain reports an operand domain that is empty or exceeds its bit width
func InvalidDomain(operand string, lo, hi int64, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidDomain,
		Path:   []string{operand},
		Detail: fmt.Sprintf("[%d, %d] %s", lo, hi, detail),
		Value:  [2]int64{lo, hi},
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Write wraps a failure to produce an output artifact
func Write(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindIO,
		Path:   []string{path},
		Detail: "write file",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
