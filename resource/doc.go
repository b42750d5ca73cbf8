// Package resource provides a handle table of boxes.
//
// A Table owns heterogeneous values addressed by integer handles. Inserting a
// box moves its value into the table; removing hands ownership back. Handles
// are typed only through the boxes they refer to, so retrieval is checked
// against the held type:
//
//	table := resource.NewTable()
//	defer table.Close()
//
//	h, err := table.Insert(box.New(conn))
//
//	c, err := resource.Lookup[*Conn](table, h) // ok
//	_, err = resource.Lookup[*File](table, h)  // errors.Is(err, box.ErrTypeMismatch)
//
//	b, ok := table.Remove(h) // caller now owns b
//	table.Drop(h2)           // destroys the value (Dropper.Drop runs)
//
// Typed gives a single-type view over a table:
//
//	conns := resource.NewTyped[*Conn](table)
//	h, _ := conns.Insert(conn)
//	conn, ok := conns.Get(h)
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	table.Subscribe(obs) // obs.OnResourceEvent(resource.Event{...})
//
// EventCreated fires on Insert, EventRemoved when ownership leaves through
// Remove, EventDropped when the table destroys a value.
//
// # Memory Management
//
// Values are not dropped when their handle is forgotten. Call Drop, Clear or
// Close to run their Drop methods.
package resource
