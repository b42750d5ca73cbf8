package layout

import (
	"reflect"
	"sync"
)

// Info describes the memory shape of a type.
type Info struct {
	Size  uintptr
	Align uintptr
	Pure  bool
}

// Fits reports whether a value with this layout can be stored in a buffer of
// the given size and alignment.
func (i Info) Fits(size, align uintptr) bool {
	return i.Pure && i.Size <= size && i.Align <= align
}

type Calculator struct {
	cache sync.Map // reflect.Type -> Info
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

var defaultCalc = NewCalculator()

// Inspect returns the layout of t using the shared calculator.
func Inspect(t reflect.Type) Info {
	return defaultCalc.Calculate(t)
}

func (c *Calculator) Calculate(t reflect.Type) Info {
	if t == nil {
		return Info{Align: 1}
	}
	if cached, ok := c.cache.Load(t); ok {
		return cached.(Info)
	}

	info := Info{
		Size:  t.Size(),
		Align: uintptr(t.Align()),
		Pure:  isPure(t),
	}

	c.cache.Store(t, info)
	return info
}

// isPure returns true if t contains no memory the collector must trace.
func isPure(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || isPure(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !isPure(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// String, Slice, Map, Pointer, UnsafePointer, Interface, Chan, Func
		return false
	}
}
