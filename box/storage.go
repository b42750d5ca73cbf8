package box

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/anybox/box/internal/layout"
)

// InlineSize is the capacity in bytes of the inline buffer.
const InlineSize = 16

const inlineWords = InlineSize / 8

// Storage identifies where a box keeps its value.
type Storage uint8

const (
	StorageEmpty Storage = iota
	StorageInline
	StorageHeap
)

func (s Storage) String() string {
	switch s {
	case StorageEmpty:
		return "empty"
	case StorageInline:
		return "inline"
	case StorageHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// storage holds either an owned heap pointer or the inline words, never both.
type storage struct {
	ptr unsafe.Pointer
	buf [inlineWords]uint64
}

var inlineAlign = unsafe.Alignof(storage{}.buf)

func (s *storage) inline() unsafe.Pointer {
	return unsafe.Pointer(&s.buf)
}

// StorageFor reports the storage a box uses for values of type T.
func StorageFor[T any]() Storage {
	info := layout.Inspect(reflect.TypeFor[T]())
	if info.Fits(InlineSize, inlineAlign) && cloneFunc[T]() == nil {
		return StorageInline
	}
	return StorageHeap
}

// Description summarizes how a type is stored in a box.
type Description struct {
	Type    reflect.Type
	Size    uintptr
	Align   uintptr
	Pure    bool // free of pointers the collector must trace
	Cloner  bool
	Dropper bool
	Storage Storage
}

// Describe reports the layout facts behind StorageFor[T].
func Describe[T any]() Description {
	typ := reflect.TypeFor[T]()
	info := layout.Inspect(typ)
	return Description{
		Type:    typ,
		Size:    info.Size,
		Align:   info.Align,
		Pure:    info.Pure,
		Cloner:  cloneFunc[T]() != nil,
		Dropper: dropFunc[T]() != nil,
		Storage: StorageFor[T](),
	}
}
