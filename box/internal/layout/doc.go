// Package layout inspects the in-memory shape of Go types for storage selection.
//
// Info records size, alignment and whether the type is pure: free of anything
// the garbage collector has to trace (pointers, strings, slices, maps,
// interfaces, channels and funcs). Only pure values may live in raw inline
// words, since the collector does not scan them.
//
// Results are memoized per reflect.Type; the cache is safe for concurrent use.
//
// This package is internal to box.
package layout
