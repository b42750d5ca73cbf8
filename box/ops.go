package box

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/anybox/errors"
)

// Cloner is implemented by types whose copy needs more than assignment, or
// may fail. A box copies such values with Clone and always keeps them on the
// heap.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Dropper is optionally implemented by values that need cleanup. Drop is
// called once when the owning box destroys the value.
type Dropper interface {
	Drop()
}

// Ops is the operation record shared by every box holding one concrete type.
// Records are created on first use and never change afterwards.
type Ops struct {
	typ     reflect.Type
	destroy func(s *storage)
	release func(s *storage)
	copy    func(src, dst *storage) error
	move    func(src, dst *storage)
	swap    func(a, b *storage)
	kind    Storage
}

// Type returns the identity of the concrete type.
func (o *Ops) Type() reflect.Type {
	return o.typ
}

// Storage returns the storage kind used for the concrete type.
func (o *Ops) Storage() Storage {
	return o.kind
}

func (o *Ops) String() string {
	return o.typ.String() + "/" + o.kind.String()
}

func newOps[T any](typ reflect.Type) *Ops {
	if StorageFor[T]() == StorageInline {
		return inlineOps[T](typ)
	}
	return heapOps[T](typ)
}

func inlineOps[T any](typ reflect.Type) *Ops {
	drop := dropFunc[T]()
	o := &Ops{typ: typ, kind: StorageInline}

	o.destroy = func(s *storage) {
		if drop != nil {
			drop((*T)(s.inline()))
		}
		s.buf = [inlineWords]uint64{}
		emit(EventDestroy, o)
	}
	o.release = func(s *storage) {
		s.buf = [inlineWords]uint64{}
	}
	o.copy = func(src, dst *storage) error {
		*(*T)(dst.inline()) = *(*T)(src.inline())
		return nil
	}
	// Inline values are pointer-free, so moving the words moves the value.
	o.move = func(src, dst *storage) {
		dst.buf = src.buf
		src.buf = [inlineWords]uint64{}
	}
	o.swap = func(a, b *storage) {
		pa, pb := (*T)(a.inline()), (*T)(b.inline())
		*pa, *pb = *pb, *pa
	}
	return o
}

func heapOps[T any](typ reflect.Type) *Ops {
	drop := dropFunc[T]()
	clone := cloneFunc[T]()
	o := &Ops{typ: typ, kind: StorageHeap}

	o.destroy = func(s *storage) {
		if drop != nil {
			drop((*T)(s.ptr))
		}
		s.ptr = nil
		emit(EventHeapFree, o)
		emit(EventDestroy, o)
	}
	// release gives up the allocation without Drop; the value now lives elsewhere.
	o.release = func(s *storage) {
		s.ptr = nil
		emit(EventHeapFree, o)
	}
	o.copy = func(src, dst *storage) error {
		var v T
		if clone != nil {
			c, err := clone((*T)(src.ptr))
			if err != nil {
				return errors.CloneFailed(typ.String(), err)
			}
			v = c
		} else {
			v = *(*T)(src.ptr)
		}
		dst.ptr = unsafe.Pointer(allocHeap(o, v))
		return nil
	}
	o.move = func(src, dst *storage) {
		dst.ptr = src.ptr
		src.ptr = nil
	}
	o.swap = func(a, b *storage) {
		a.ptr, b.ptr = b.ptr, a.ptr
	}
	return o
}

func allocHeap[T any](o *Ops, v T) *T {
	p := new(T)
	*p = v
	emit(EventHeapAlloc, o)
	return p
}

// cloneFunc returns the Clone method of T bound through a pointer, or nil when
// T copies by assignment.
func cloneFunc[T any]() func(*T) (T, error) {
	if _, ok := any(new(T)).(Cloner[T]); ok {
		return func(p *T) (T, error) {
			return any(p).(Cloner[T]).Clone()
		}
	}
	var zero T
	if _, ok := any(zero).(Cloner[T]); ok {
		return func(p *T) (T, error) {
			return any(*p).(Cloner[T]).Clone()
		}
	}
	return nil
}

// dropFunc returns the Drop method of T, or nil. Interface types are checked
// against the dynamic value at destroy time.
func dropFunc[T any]() func(*T) {
	if _, ok := any(new(T)).(Dropper); ok {
		return func(p *T) {
			any(p).(Dropper).Drop()
		}
	}
	var zero T
	if _, ok := any(zero).(Dropper); ok || reflect.TypeFor[T]().Kind() == reflect.Interface {
		return func(p *T) {
			if d, ok := any(*p).(Dropper); ok {
				d.Drop()
			}
		}
	}
	return nil
}
