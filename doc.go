// Package anybox provides a type-erased value container for Go.
//
// The library is organized into packages with distinct responsibilities:
//
//	anybox/
//	├── box/            Box container, operation records, checked extraction
//	├── resource/       Handle table of boxes with typed views
//	├── errors/         Structured error types for debugging
//	└── cmd/boxinspect/ Storage decision inspector
//
// # Quick Start
//
//	b := box.New(record{1, 2, 3})
//	defer b.Reset()
//
//	r, err := box.Cast[record](b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Storage
//
// Small values without pointers (up to box.InlineSize bytes) are kept inline in
// the box itself. Larger values, values with pointers and values whose copy
// may fail (box.Cloner) are kept behind an owned heap pointer. One immutable
// operation record per concrete type drives copy, move, swap and destroy for
// every box holding that type.
//
// # Thread Safety
//
// Box is a single-owner value and is NOT thread-safe. The operation record
// registry and resource.Table are safe for concurrent use.
package anybox
