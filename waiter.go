package resetevent

import (
	"github.com/anacrolix/chansync"
)

// waiter is a single pending rendezvous. It settles exactly once, either to
// success (nil err) when consumed by Set, or to the cancellation error of
// the context that gave up on it. The suspended caller selects on
// settled.Done().
type waiter struct {
	settled chansync.SetOnce
	// Valid to read only after settled fires.
	err error
}

// settle transitions the waiter to its terminal state, reporting whether
// this call did it. Call only with the owning Event's lock held: that's what
// serializes racing Set and cancellation so exactly one wins.
func (me *waiter) settle(err error) bool {
	if me.settled.IsSet() {
		return false
	}
	me.err = err
	me.settled.Set()
	return true
}
