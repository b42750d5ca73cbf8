package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which operation produced the error
type Phase string

const (
	PhaseConstruct Phase = "construct" // binding a value to a box
	PhaseCopy      Phase = "copy"      // copy construction / copy assignment
	PhaseCast      Phase = "cast"      // typed extraction
	PhaseTable     Phase = "table"     // handle table operations
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindEmpty        Kind = "empty"
	KindNilPointer   Kind = "nil_pointer"
	KindCloneFailed  Kind = "clone_failed"
	KindNotFound     Kind = "not_found"
	KindClosed       Kind = "closed"
	KindInvalidInput Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string // type held by the box
	WantType string // type requested by the caller
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.GoType != "" || e.WantType != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.WantType != "":
			b.WriteString("holds ")
			b.WriteString(e.GoType)
			b.WriteString(", requested ")
			b.WriteString(e.WantType)
		case e.GoType != "":
			b.WriteString("holds ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("requested ")
			b.WriteString(e.WantType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WantType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
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

// GoType sets the held Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WantType sets the requested Go type name
func (b *Builder) WantType(t string) *Builder {
	b.err.WantType = t
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, held, want string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		GoType:   held,
		WantType: want,
	}
}

// Empty creates an error for an operation that needs a value but found none
func Empty(phase Phase, want string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindEmpty,
		WantType: want,
		Detail:   "box holds no value",
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// CloneFailed wraps an error returned by a value's Clone method
func CloneFailed(goType string, cause error) *Error {
	return New(PhaseCopy, KindCloneFailed).
		GoType(goType).
		Cause(cause).
		Detail("clone").
		Build()
}

// NotFound creates a not-found error
func NotFound(phase Phase, what string, key any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %v not found", what, key),
		Value:  key,
	}
}

// Closed creates an error for an operation on a closed component
func Closed(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s closed", component),
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

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
