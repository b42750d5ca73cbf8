package resource

import (
	"reflect"
	"testing"

	"github.com/wippyai/anybox/box"
)

type point struct{ X, Y int32 }

func TestTyped_Basic(t *testing.T) {
	table := NewTable()
	points := NewTyped[point](table)

	h, err := points.Insert(point{1, 2})
	if err != nil {
		t.Fatal(err)
	}

	p, ok := points.Get(h)
	if !ok || p != (point{1, 2}) {
		t.Fatalf("Get = %v, %v", p, ok)
	}

	other, _ := table.Insert(box.New("not a point"))
	if _, ok := points.Get(other); ok {
		t.Error("typed view should not see other types")
	}
	if _, ok := points.Remove(other); ok {
		t.Error("typed Remove must not take other types")
	}
	if _, ok := table.Get(other); !ok {
		t.Error("mismatched typed Remove must leave the entry in place")
	}

	if points.Len() != 1 {
		t.Errorf("Len = %d, want 1", points.Len())
	}

	removed, ok := points.Remove(h)
	if !ok || removed != (point{1, 2}) {
		t.Fatalf("Remove = %v, %v", removed, ok)
	}
	if points.Len() != 0 || table.Len() != 1 {
		t.Errorf("typed Len=%d table Len=%d", points.Len(), table.Len())
	}
}

func TestTyped_Each(t *testing.T) {
	table := NewTable()
	points := NewTyped[point](table)

	points.Insert(point{1, 1})
	table.Insert(box.New(42))
	points.Insert(point{2, 2})

	var sum int32
	points.Each(func(_ Handle, p point) bool {
		sum += p.X
		return true
	})
	if sum != 3 {
		t.Errorf("sum = %d, want 3", sum)
	}
}

func TestTyped_InsertClosed(t *testing.T) {
	table := NewTable()
	table.Close()

	if _, err := NewTyped[int](table).Insert(1); err == nil {
		t.Error("insert into closed table should fail")
	}
}

type bigPoint struct {
	Coords [8]int64
}

type heapCounter struct {
	allocs, frees, destroys int
}

func (c *heapCounter) OnBoxEvent(e box.Event) {
	if e.GoType != reflect.TypeFor[bigPoint]() {
		return
	}
	switch e.Type {
	case box.EventHeapAlloc:
		c.allocs++
	case box.EventHeapFree:
		c.frees++
	case box.EventDestroy:
		c.destroys++
	}
}

func TestTyped_RemoveReleasesStorage(t *testing.T) {
	c := &heapCounter{}
	box.Subscribe(c)
	t.Cleanup(func() { box.Unsubscribe(c) })

	table := NewTable()
	points := NewTyped[bigPoint](table)
	h, err := points.Insert(bigPoint{Coords: [8]int64{4}})
	if err != nil {
		t.Fatal(err)
	}

	v, ok := points.Remove(h)
	if !ok || v.Coords[0] != 4 {
		t.Fatalf("Remove = %v, %v", v, ok)
	}
	if c.allocs != 1 || c.frees != 1 {
		t.Errorf("allocs=%d frees=%d, want 1/1", c.allocs, c.frees)
	}
	if c.destroys != 0 {
		t.Errorf("destroys=%d, removed value must not be destroyed", c.destroys)
	}
}
