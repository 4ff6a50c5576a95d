// Package event provides the notification channels for a text-layer
// editing session.
//
// Two channels exist because they serve different subscriber sets:
//
//   - Bus carries typed semantic events keyed by topic (text changed,
//     alignment changed, color changed, ...). Handlers receive the event
//     payload and can filter by topic.
//   - Rebuilder carries zero-payload rebuild signals. Presentation layers
//     subscribe to it to resynchronize after any state change without
//     caring which field moved.
//
// Delivery is synchronous in the publisher's goroutine: the session model
// is single-threaded and every mutation completes, including notification,
// before control returns to the caller. Handler panics are contained so a
// misbehaving observer cannot tear down the session.
package event
