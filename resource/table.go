package resource

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/anybox/box"
	"github.com/wippyai/anybox/errors"
)

// Table owns a set of boxes addressed by handle. Handles are recycled after
// removal. Table is safe for concurrent use; the boxes it hands out are not.
type Table struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	box   *box.Box
	valid bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert moves the value held by b into the table and returns its handle.
// b is left empty.
func (t *Table) Insert(b *box.Box) (Handle, error) {
	if b == nil {
		return 0, errors.NilPointer(errors.PhaseTable, "*box.Box")
	}
	if b.Empty() {
		return 0, errors.InvalidInput(errors.PhaseTable, "cannot insert an empty box")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, errors.Closed(errors.PhaseTable, "table")
	}

	e := entry{box: b.Take(), valid: true}
	typ := e.box.Type()

	var handle Handle
	if n := len(t.freeList); n > 0 {
		handle = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventCreated, Handle: handle, GoType: typ})
	return handle, nil
}

// Get returns the box stored under handle. The box stays owned by the table.
func (t *Table) Get(handle Handle) (*box.Box, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.lookup(handle)
	if !ok {
		return nil, false
	}
	return e.box, true
}

// Type returns the type held under handle.
func (t *Table) Type(handle Handle) (reflect.Type, bool) {
	b, ok := t.Get(handle)
	if !ok {
		return nil, false
	}
	return b.Type(), true
}

// Lookup returns a pointer to the value under handle if it has exactly type T.
func Lookup[T any](t *Table, handle Handle) (*T, error) {
	b, ok := t.Get(handle)
	if !ok {
		return nil, errors.NotFound(errors.PhaseTable, "handle", handle)
	}
	return box.CastPtr[T](b)
}

// Remove takes the box stored under handle out of the table. Ownership moves
// to the caller; the value is not destroyed.
func (t *Table) Remove(handle Handle) (*box.Box, bool) {
	return t.removeIf(handle, nil)
}

// Drop removes the box stored under handle and destroys its value.
func (t *Table) Drop(handle Handle) bool {
	b, ok := t.take(handle, nil)
	if !ok {
		return false
	}
	typ := b.Type()
	b.Reset()
	t.notify(Event{Type: EventDropped, Handle: handle, GoType: typ})
	return true
}

func (t *Table) removeIf(handle Handle, want reflect.Type) (*box.Box, bool) {
	b, ok := t.take(handle, want)
	if !ok {
		return nil, false
	}
	t.notify(Event{Type: EventRemoved, Handle: handle, GoType: b.Type()})
	return b, true
}

// take detaches the entry under handle, optionally only if it holds want.
func (t *Table) take(handle Handle, want reflect.Type) (*box.Box, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.lookup(handle)
	if !ok {
		return nil, false
	}
	if want != nil && e.box.Type() != want {
		return nil, false
	}

	b := e.box
	t.entries[handle-1] = entry{}
	t.freeList = append(t.freeList, handle)
	return b, true
}

// lookup must be called with mu held.
func (t *Table) lookup(handle Handle) (entry, bool) {
	if handle == 0 || int(handle) > len(t.entries) {
		return entry{}, false
	}
	e := t.entries[handle-1]
	if !e.valid {
		return entry{}, false
	}
	return e, true
}

// Len returns the number of stored boxes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over stored boxes in handle order until fn returns false.
// fn must not call back into the table.
func (t *Table) Each(fn func(Handle, *box.Box) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.box) {
				break
			}
		}
	}
}

// Clear drops every stored box.
func (t *Table) Clear() {
	// Collect handles first to avoid holding the lock during Drop
	var handles []Handle
	t.Each(func(h Handle, _ *box.Box) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Drop(h)
	}
}

// Close drops every stored box and rejects further inserts.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.mu.Unlock()

	n := t.Len()
	t.Clear()
	box.Logger().Debug("resource table closed", zap.Int("dropped", n))
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	subs := t.observers
	t.obsMu.RUnlock()
	for _, o := range subs {
		o.OnResourceEvent(e)
	}
}
