package box

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/anybox/errors"
)

// noCopy lets go vet's copylocks check report by-value copies of a Box.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Box holds one value of any type, or nothing. The zero value is an empty box.
type Box struct {
	noCopy noCopy
	ops    *Ops
	st     storage
}

var (
	boxType    = reflect.TypeFor[Box]()
	boxPtrType = reflect.TypeFor[*Box]()
)

// New returns a box holding v.
//
// If v is a *Box its value is moved into the new box and the source is left
// empty. If v is a Box its value is copied and the caller's box is left
// untouched. Boxes are never nested.
func New[T any](v T) *Box {
	b := new(Box)
	Store(b, v)
	return b
}

// Store replaces the value held by dst with v. The previous value is destroyed
// only after v has been bound to a temporary, so dst is never observed half
// built. Boxes passed as v are moved or copied, as with New. Store panics if
// copying a Box passed by value fails; TryStore returns that error instead.
func Store[T any](dst *Box, v T) {
	if err := TryStore(dst, v); err != nil {
		panic(err)
	}
}

// TryStore is like Store but reports a failed copy of a Box passed by value.
// dst is unchanged on error.
func TryStore[T any](dst *Box, v T) error {
	var tmp Box
	switch reflect.TypeFor[T]() {
	case boxType:
		// v aliases the caller's storage: copy out of it, never destroy it.
		src := (*Box)(unsafe.Pointer(&v))
		if err := src.cloneInto(&tmp); err != nil {
			return errors.Wrap(errors.PhaseConstruct, errors.KindCloneFailed, err, "copy boxed value")
		}
	case boxPtrType:
		dst.MoveFrom(*(**Box)(unsafe.Pointer(&v)))
		return nil
	default:
		construct(&tmp, v)
	}
	dst.Swap(&tmp)
	tmp.Reset()
	return nil
}

// construct binds v to an empty box.
func construct[T any](b *Box, v T) {
	o := OpsFor[T]()
	switch o.kind {
	case StorageInline:
		*(*T)(b.st.inline()) = v
	case StorageHeap:
		b.st.ptr = unsafe.Pointer(allocHeap(o, v))
	}
	b.ops = o
}

// Empty reports whether the box holds no value.
func (b *Box) Empty() bool {
	return b == nil || b.ops == nil
}

// Type returns the type of the held value, or nil when the box is empty.
func (b *Box) Type() reflect.Type {
	if b.Empty() {
		return nil
	}
	return b.ops.typ
}

// Storage reports where the held value lives.
func (b *Box) Storage() Storage {
	if b.Empty() {
		return StorageEmpty
	}
	return b.ops.kind
}

// Ops returns the operation record bound to the box, or nil when empty.
func (b *Box) Ops() *Ops {
	if b == nil {
		return nil
	}
	return b.ops
}

// Reset destroys the held value and leaves the box empty. Resetting an empty
// box is a no-op.
func (b *Box) Reset() {
	if b.Empty() {
		return
	}
	o := b.ops
	b.ops = nil
	o.destroy(&b.st)
}

// Clone returns an independent copy of the box. On error nothing is
// allocated and no Drop runs.
func (b *Box) Clone() (*Box, error) {
	c := new(Box)
	if err := b.cloneInto(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Take moves the held value into a new box and leaves b empty.
func (b *Box) Take() *Box {
	t := new(Box)
	b.moveInto(t)
	return t
}

// CopyFrom replaces the held value with a copy of src's. If the copy fails b
// is left unchanged.
func (b *Box) CopyFrom(src *Box) error {
	var tmp Box
	if err := src.cloneInto(&tmp); err != nil {
		return err
	}
	b.Swap(&tmp)
	tmp.Reset()
	return nil
}

// MoveFrom replaces the held value with src's and leaves src empty. A nil src
// empties b.
func (b *Box) MoveFrom(src *Box) {
	var tmp Box
	src.moveInto(&tmp)
	b.Swap(&tmp)
	tmp.Reset()
}

// Swap exchanges the contents of two boxes. A nil box counts as empty: the
// other side is reset, since there is nowhere to move its value.
func (b *Box) Swap(other *Box) {
	if b == other {
		return
	}
	if b == nil {
		other.Reset()
		return
	}
	if other == nil {
		b.Reset()
		return
	}
	// Storage slots are only interchangeable when both sides share a record;
	// otherwise rotate through a temporary with whole-box moves.
	if b.ops != other.ops {
		var tmp Box
		other.moveInto(&tmp)
		b.moveInto(other)
		tmp.moveInto(b)
		return
	}
	if b.ops != nil {
		b.ops.swap(&b.st, &other.st)
	}
}

func (b *Box) String() string {
	if b.Empty() {
		return "box(empty)"
	}
	return "box(" + b.ops.typ.String() + ", " + b.ops.kind.String() + ")"
}

// cloneInto copies b's value into the empty dst. dst is bound to the record
// only once the copy succeeded.
func (b *Box) cloneInto(dst *Box) error {
	if b.Empty() {
		return nil
	}
	if err := b.ops.copy(&b.st, &dst.st); err != nil {
		return err
	}
	dst.ops = b.ops
	return nil
}

// moveInto transfers b's value into the empty dst.
func (b *Box) moveInto(dst *Box) {
	if b.Empty() {
		return
	}
	o := b.ops
	dst.ops = o
	o.move(&b.st, &dst.st)
	b.ops = nil
}

// data returns the address of the held value. b must not be empty.
func (b *Box) data() unsafe.Pointer {
	if b.ops.kind == StorageInline {
		return b.st.inline()
	}
	return b.st.ptr
}
