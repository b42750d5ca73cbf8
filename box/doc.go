// Package box provides Box, a value container that erases the static type of
// the value it holds.
//
// A Box owns at most one value. Small pointer-free values are stored inline in
// a fixed 16-byte buffer; everything else lives behind an owned heap pointer.
// Every lifecycle event (copy, move, swap, destroy) is routed through an
// operation record (Ops) generated once per concrete type and shared by every
// box holding that type.
//
// # Construction and extraction
//
//	b := box.New(42)
//	defer b.Reset()
//
//	n, err := box.Cast[int](b) // 42, nil
//	s, err := box.Cast[string](b) // "", errors.Is(err, box.ErrTypeMismatch)
//
//	p, err := box.CastPtr[int](b) // points into the box; valid until b is mutated
//	*p = 7
//
// Extraction compares the requested type against the held type identity.
// UnsafeCast skips that check and should only be used when the type is known.
//
// # Value semantics
//
// A Box must not be copied by assignment once it holds a value; go vet reports
// such copies. Use the explicit operations instead:
//
//	c, err := b.Clone() // deep copy (Cloner.Clone when the type provides it)
//	d := b.Take()       // move: b is left empty
//	c.Swap(d)           // exchange contents
//	c.CopyFrom(d)       // copy assignment, c unchanged on error
//	c.MoveFrom(d)       // move assignment, d left empty
//
// Passing a *Box to New or Store moves its value instead of wrapping the box
// itself. A Box passed by value is copied, leaving the caller's box intact;
// TryStore reports a failed copy. Unbox moves a typed value out of a box
// without running Drop.
//
// # Storage selection
//
// A type is stored inline when it contains nothing the garbage collector must
// trace, fits in InlineSize bytes, and does not implement Cloner (whose copy
// may fail). Use StorageFor to query the decision.
//
// # Lifecycle hooks
//
// Types implementing Dropper have Drop called exactly once when the box
// holding them is reset or overwritten. Observers registered with Subscribe
// receive EventHeapAlloc, EventHeapFree, EventDestroy and EventOpsCreated.
//
// # Thread Safety
//
// A Box is a single-owner value and is NOT safe for concurrent mutation. The
// operation record registry and the observer list are safe for concurrent use.
package box
