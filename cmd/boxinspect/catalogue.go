package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/wippyai/anybox/box"
)

type point3 struct{ X, Y, Z int32 }

type wide struct {
	A, B, C int64
}

type journal struct {
	Entries []string
}

func (j journal) Clone() (journal, error) {
	return journal{Entries: slices.Clone(j.Entries)}, nil
}

type sample struct {
	name  string
	desc  box.Description
	ops   func() *box.Ops
	round func() (roundStats, error)
}

// roundStats counts the storage events seen while a value went through
// construct, copy, move, swap and destroy.
type roundStats struct {
	allocs   int
	frees    int
	destroys int
	shared   bool
}

func (r roundStats) String() string {
	return fmt.Sprintf("allocs=%d frees=%d destroys=%d shared-ops=%t", r.allocs, r.frees, r.destroys, r.shared)
}

func sampleOf[T any](name string, v T) sample {
	return sample{
		name:  name,
		desc:  box.Describe[T](),
		ops:   box.OpsFor[T],
		round: func() (roundStats, error) { return runRound(v) },
	}
}

func catalogue() []sample {
	return []sample{
		sampleOf("bool", true),
		sampleOf("int", 5),
		sampleOf("float64", 2.5),
		sampleOf("complex128", complex(1, 2)),
		sampleOf("[2]uint64", [2]uint64{1, 2}),
		sampleOf("point3", point3{1, 2, 3}),
		sampleOf("[17]byte", [17]byte{}),
		sampleOf("wide", wide{1, 2, 3}),
		sampleOf("string", "hello"),
		sampleOf("[]byte", []byte("hello")),
		sampleOf("map[string]int", map[string]int{"a": 1}),
		sampleOf("*int", new(int)),
		sampleOf("error", errors.New("boom")),
		sampleOf("journal", journal{Entries: []string{"a"}}),
	}
}

func filterSamples(samples []sample, filter string) []sample {
	if filter == "" {
		return samples
	}
	filter = strings.ToLower(filter)
	var out []sample
	for _, s := range samples {
		if strings.Contains(strings.ToLower(s.name), filter) ||
			strings.Contains(s.desc.Storage.String(), filter) {
			out = append(out, s)
		}
	}
	return out
}

type roundCounter struct {
	mu    sync.Mutex
	stats roundStats
}

func (c *roundCounter) OnBoxEvent(e box.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch e.Type {
	case box.EventHeapAlloc:
		c.stats.allocs++
	case box.EventHeapFree:
		c.stats.frees++
	case box.EventDestroy:
		c.stats.destroys++
	}
}

func runRound[T any](v T) (roundStats, error) {
	c := &roundCounter{}
	box.Subscribe(c)
	defer box.Unsubscribe(c)

	a := box.New(v)
	defer a.Reset()

	b, err := a.Clone()
	if err != nil {
		return roundStats{}, err
	}
	defer b.Reset()

	moved := b.Take()
	defer moved.Reset()

	a.Swap(moved)
	if _, err := box.Cast[T](a); err != nil {
		return roundStats{}, err
	}
	shared := a.Ops() == moved.Ops() && a.Ops() == box.OpsFor[T]()

	a.Reset()
	moved.Reset()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.shared = shared
	return c.stats, nil
}
