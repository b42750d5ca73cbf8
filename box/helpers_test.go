package box

import (
	"errors"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// record is the 3-field payload from the swap scenario; 12 bytes, inline.
type record struct {
	A1, A2, A3 int32
}

// big exceeds the inline buffer.
type big struct {
	Words [8]int64
}

var (
	dropMu     sync.Mutex
	dropCounts = map[int64]int{}
	lastID     atomic.Int64
)

func nextID() int64 {
	return lastID.Add(1)
}

func recordDrop(id int64) {
	dropMu.Lock()
	defer dropMu.Unlock()
	dropCounts[id]++
}

func drops(id int64) int {
	dropMu.Lock()
	defer dropMu.Unlock()
	return dropCounts[id]
}

// tracked is an inline payload that counts its Drop calls.
type tracked struct {
	ID int64
}

func (t tracked) Drop() { recordDrop(t.ID) }

// trackedRecord is the swap scenario record with drop counting.
type trackedRecord struct {
	A1, A2, A3 int32
	ID         int32
}

func (t *trackedRecord) Drop() { recordDrop(int64(t.ID)) }

// trackedBig is a heap payload that counts its Drop calls.
type trackedBig struct {
	ID  int64
	Pad [6]int64
}

func (t *trackedBig) Drop() { recordDrop(t.ID) }

// doc deep-copies its slice through Clone.
type doc struct {
	Lines []string
}

func (d doc) Clone() (doc, error) {
	return doc{Lines: slices.Clone(d.Lines)}, nil
}

var errClone = errors.New("clone refused")

// flaky is small and pointer-free, but its copy may fail.
type flaky struct {
	N int32
}

func (f flaky) Clone() (flaky, error) {
	if f.N < 0 {
		return flaky{}, errClone
	}
	return f, nil
}

// handle is a pointer payload whose methods live on the pointer type itself.
type handle struct {
	ID     int64
	closed bool
}

func (h *handle) Drop() {
	h.closed = true
	recordDrop(h.ID)
}

type eventCounter struct {
	mu     sync.Mutex
	counts map[EventType]int
	byType map[reflect.Type]map[EventType]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{
		counts: map[EventType]int{},
		byType: map[reflect.Type]map[EventType]int{},
	}
}

func (c *eventCounter) OnBoxEvent(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[e.Type]++
	if c.byType[e.GoType] == nil {
		c.byType[e.GoType] = map[EventType]int{}
	}
	c.byType[e.GoType][e.Type]++
}

func (c *eventCounter) count(t EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[t]
}

func (c *eventCounter) countFor(typ reflect.Type, t EventType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byType[typ][t]
}

// observe subscribes a fresh counter for the duration of the test.
func observe(t interface{ Cleanup(func()) }) *eventCounter {
	c := newEventCounter()
	Subscribe(c)
	t.Cleanup(func() { Unsubscribe(c) })
	return c
}
