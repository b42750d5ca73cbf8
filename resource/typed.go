package resource

import (
	"reflect"

	"github.com/wippyai/anybox/box"
)

// Typed provides type-safe access to the entries of a table that hold T.
// Entries of other types in the same table are invisible to it.
type Typed[T any] struct {
	table *Table
	typ   reflect.Type
}

// NewTyped returns a typed view over t.
func NewTyped[T any](t *Table) *Typed[T] {
	return &Typed[T]{table: t, typ: reflect.TypeFor[T]()}
}

// Insert boxes v and stores it.
func (t *Typed[T]) Insert(v T) (Handle, error) {
	b := box.New(v)
	h, err := t.table.Insert(b)
	if err != nil {
		b.Reset()
		return 0, err
	}
	return h, nil
}

// Get returns a copy of the value under handle.
func (t *Typed[T]) Get(handle Handle) (T, bool) {
	p, err := Lookup[T](t.table, handle)
	if err != nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Remove takes the value under handle out of the table if it holds T.
// Ownership passes to the caller: Drop does not run.
func (t *Typed[T]) Remove(handle Handle) (T, bool) {
	var zero T
	b, ok := t.table.removeIf(handle, t.typ)
	if !ok {
		return zero, false
	}
	v, err := box.Unbox[T](b)
	if err != nil {
		return zero, false
	}
	return v, true
}

// Len returns the number of entries holding T.
func (t *Typed[T]) Len() int {
	n := 0
	t.Each(func(Handle, T) bool {
		n++
		return true
	})
	return n
}

// Each iterates over the entries holding T.
func (t *Typed[T]) Each(fn func(Handle, T) bool) {
	t.table.Each(func(h Handle, b *box.Box) bool {
		v, err := box.Cast[T](b)
		if err != nil {
			return true
		}
		return fn(h, v)
	})
}
