// Package resetevent provides auto-reset and manual-reset events for
// coordinating goroutines, after the style of the classic OS event objects.
//
// An auto-reset event releases exactly one waiter per Set and then clears
// itself; a manual-reset event stays signaled, releasing all current and
// future waiters, until it's explicitly Reset. The signal is a boolean, not
// a counter: setting an already-signaled event is a no-op in both modes.
//
// Waits can be bounded by a context or a timeout. All methods are safe for
// concurrent use.
package resetevent
