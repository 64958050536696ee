// Package dispatcher routes events to an ordered chain of bindings.
//
// A Dispatcher belongs to one widget. It holds bindings in registration
// order; each binding pairs a predicate over the incoming Event with an
// action closure and a fallthrough flag.
//
// # Dispatch
//
// Dispatch tries bindings first-registered first:
//
//  1. A binding whose predicate does not match is skipped.
//  2. A matching binding without fallthrough runs its action and its
//     result ends the dispatch. Later bindings never see the event.
//  3. A matching fallthrough binding runs its action. An error ends the
//     dispatch with that error; success continues with the next binding.
//
// Dispatch returns nil when nothing matched or every matching fallthrough
// binding succeeded. Two exclusive bindings with identical predicates are
// not a conflict: only the first ever fires.
//
// # Events
//
// Event is a closed union of EventNone, EventKey and EventUpdate. Key
// bindings match the exact key, modifiers and press kind. Update bindings
// match every EventUpdate, which the frame loop sends once per frame.
//
// # Usage
//
//	d := dispatcher.NewWithDefaults()
//	d.BindKey(key.MustParse("q"), false, func() error {
//	    running.Stop()
//	    return nil
//	})
//	d.BindUpdate(true, tick)
//
//	err := d.Dispatch(dispatcher.KeyEvent(ev))
//
// # Panics
//
// With Config.RecoverFromPanic set, a panicking action is recovered and
// reported as a *PanicError, which then propagates like any action error.
package dispatcher
