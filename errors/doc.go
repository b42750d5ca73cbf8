// Package errors provides structured error types for the anybox library.
//
// Errors are categorized by Phase (which operation failed) and Kind (error category).
// The Error type carries the held and requested Go type names, the offending
// value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCast, errors.KindTypeMismatch).
//		GoType("int").
//		WantType("string").
//		Detail("held value is not a string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseCast, "int", "string")
//	err := errors.CloneFailed("*main.Doc", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind only, so package-level sentinels such as
// box.ErrTypeMismatch can be compared with errors.Is.
package errors
