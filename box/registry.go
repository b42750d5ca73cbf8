package box

import (
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
)

var registry sync.Map // reflect.Type -> *Ops

// OpsFor returns the operation record for T, creating it on first use.
// Concurrent first use observes a single record.
func OpsFor[T any]() *Ops {
	typ := reflect.TypeFor[T]()
	if cached, ok := registry.Load(typ); ok {
		return cached.(*Ops)
	}

	o := newOps[T](typ)
	actual, loaded := registry.LoadOrStore(typ, o)
	if !loaded {
		Logger().Debug("operation record created",
			zap.Stringer("type", typ),
			zap.Stringer("storage", o.kind))
		emit(EventOpsCreated, o)
	}
	return actual.(*Ops)
}

// Lookup returns the record registered for typ, if any box has held it.
func Lookup(typ reflect.Type) (*Ops, bool) {
	if typ == nil {
		return nil, false
	}
	o, ok := registry.Load(typ)
	if !ok {
		return nil, false
	}
	return o.(*Ops), true
}

// Registered returns a snapshot of all records, ordered by type name.
func Registered() []*Ops {
	var out []*Ops
	registry.Range(func(_, v any) bool {
		out = append(out, v.(*Ops))
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].typ.String() < out[j].typ.String()
	})
	return out
}
