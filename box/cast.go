package box

import (
	"reflect"

	"github.com/wippyai/anybox/errors"
)

// Sentinels for errors.Is.
var (
	ErrTypeMismatch = &errors.Error{Phase: errors.PhaseCast, Kind: errors.KindTypeMismatch}
	ErrEmpty        = &errors.Error{Phase: errors.PhaseCast, Kind: errors.KindEmpty}
	ErrNilBox       = &errors.Error{Phase: errors.PhaseCast, Kind: errors.KindNilPointer}
	ErrCloneFailed  = &errors.Error{Phase: errors.PhaseCopy, Kind: errors.KindCloneFailed}
)

// CastPtr returns a pointer to the held value if it has exactly type T.
// The pointer aliases the box and is valid until the box is next mutated.
func CastPtr[T any](b *Box) (*T, error) {
	want := reflect.TypeFor[T]()
	if b == nil {
		return nil, errors.New(errors.PhaseCast, errors.KindNilPointer).
			GoType(boxPtrType.String()).
			WantType(want.String()).
			Detail("nil box").
			Build()
	}
	if b.ops == nil {
		return nil, errors.Empty(errors.PhaseCast, want.String())
	}
	if b.ops.typ != want {
		return nil, errors.TypeMismatch(errors.PhaseCast, b.ops.typ.String(), want.String())
	}
	return (*T)(b.data()), nil
}

// Cast returns a copy of the held value if it has exactly type T.
func Cast[T any](b *Box) (T, error) {
	p, err := CastPtr[T](b)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// MustCast is like Cast but panics on failure.
func MustCast[T any](b *Box) T {
	v, err := Cast[T](b)
	if err != nil {
		panic(err)
	}
	return v
}

// Unbox moves the held value out of b if it has exactly type T and leaves b
// empty. Ownership passes to the caller, so Drop does not run; heap storage is
// released and reported as EventHeapFree. On error b is unchanged.
func Unbox[T any](b *Box) (T, error) {
	p, err := CastPtr[T](b)
	if err != nil {
		var zero T
		return zero, err
	}
	v := *p
	o := b.ops
	b.ops = nil
	o.release(&b.st)
	return v, nil
}

// Is reports whether b holds a value of exactly type T.
func Is[T any](b *Box) bool {
	return !b.Empty() && b.ops.typ == reflect.TypeFor[T]()
}

// UnsafeCast reinterprets the held value as T without checking its type.
// It returns nil only when the box is empty. Reading through the result when
// T differs from the held type is undefined.
func UnsafeCast[T any](b *Box) *T {
	if b.Empty() {
		return nil
	}
	return (*T)(b.data())
}
