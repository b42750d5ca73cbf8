package box

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// EventType identifies a storage lifecycle event.
type EventType uint8

const (
	EventOpsCreated EventType = iota
	EventHeapAlloc
	EventHeapFree
	EventDestroy
)

func (e EventType) String() string {
	switch e {
	case EventOpsCreated:
		return "ops_created"
	case EventHeapAlloc:
		return "heap_alloc"
	case EventHeapFree:
		return "heap_free"
	case EventDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Event describes a single storage lifecycle event.
type Event struct {
	GoType  reflect.Type
	Type    EventType
	Storage Storage
}

// Observer receives storage lifecycle events. OnBoxEvent is called
// synchronously on the goroutine performing the operation.
type Observer interface {
	OnBoxEvent(Event)
}

var (
	observers []Observer
	obsMu     sync.RWMutex
	obsCount  atomic.Int32
)

// Subscribe adds an observer for lifecycle events of every box.
func Subscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	observers = append(observers, o)
	obsCount.Store(int32(len(observers)))
}

// Unsubscribe removes an observer.
func Unsubscribe(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	for i, obs := range observers {
		if obs == o {
			observers = append(observers[:i:i], observers[i+1:]...)
			break
		}
	}
	obsCount.Store(int32(len(observers)))
}

func emit(t EventType, o *Ops) {
	if obsCount.Load() == 0 {
		return
	}
	e := Event{Type: t, GoType: o.typ, Storage: o.kind}

	// Observers run outside the lock so they may subscribe, unsubscribe or
	// box values themselves.
	obsMu.RLock()
	subs := observers
	obsMu.RUnlock()
	for _, obs := range subs {
		obs.OnBoxEvent(e)
	}
}
