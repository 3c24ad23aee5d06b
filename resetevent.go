package resetevent

import (
	"context"
	"time"

	"github.com/anacrolix/sync"
	list "github.com/bahlo/generic-list-go"
)

type mode int

const (
	autoReset mode = iota
	manualReset
)

// Event is a reset event in one of the two modes. The zero value is not
// usable; construct with NewAutoResetEvent or NewManualResetEvent.
type Event struct {
	mode mode

	mu       sync.Mutex
	signaled bool
	// Waiters in arrival order. Entries settled by cancellation aren't
	// removed here, they stay queued until a later Set walks past them.
	waiters *list.List[*waiter]

	stats Stats
}

// NewAutoResetEvent returns an event that releases exactly one waiter per
// Set, clearing itself when it does.
func NewAutoResetEvent(initiallySignaled bool) *Event {
	return newEvent(autoReset, initiallySignaled)
}

// NewManualResetEvent returns an event that once Set stays signaled,
// releasing all current and future waiters, until Reset.
func NewManualResetEvent(initiallySignaled bool) *Event {
	return newEvent(manualReset, initiallySignaled)
}

func newEvent(m mode, signaled bool) *Event {
	return &Event{
		mode:     m,
		signaled: signaled,
		waiters:  list.New[*waiter](),
	}
}

// Set signals the event. In auto mode the first live waiter in FIFO order is
// released and the event stays clear; if there is none the event latches
// signaled. In manual mode every live waiter is released and the event
// latches signaled. Waiters that were already cancelled are discarded as the
// queue is walked.
func (me *Event) Set() {
	me.mu.Lock()
	defer me.mu.Unlock()
	for {
		front := me.waiters.Front()
		if front == nil {
			break
		}
		w := me.waiters.Remove(front)
		if !w.settle(nil) {
			me.stats.SweptStale.Add(1)
			continue
		}
		me.stats.Released.Add(1)
		if me.mode == autoReset {
			// The released waiter consumed the signal.
			return
		}
	}
	me.signaled = true
}

// Reset clears the signaled state. Waiters already queued are unaffected and
// remain pending.
func (me *Event) Reset() {
	me.mu.Lock()
	me.signaled = false
	me.mu.Unlock()
}

// IsSet returns whether the event is currently signaled. By the time the
// caller acts on the result it may be stale.
func (me *Event) IsSet() bool {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.signaled
}

// Wait blocks until the event releases the caller.
func (me *Event) Wait() {
	// Background's Done channel is nil, so the select in WaitContext blocks
	// on the waiter alone.
	_ = me.WaitContext(context.Background())
}

// WaitContext blocks until the event releases the caller or ctx is done,
// returning ctx's error in the latter case. A ctx that is already done fails
// immediately without consuming a signal. Releases follow FIFO order among
// waiters that block.
func (me *Event) WaitContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	me.mu.Lock()
	me.stats.Waits.Add(1)
	if me.signaled {
		if me.mode == autoReset {
			me.signaled = false
		}
		me.stats.ImmediateGrants.Add(1)
		me.mu.Unlock()
		return nil
	}
	w := new(waiter)
	me.waiters.PushBack(w)
	me.mu.Unlock()

	select {
	case <-w.settled.Done():
		return w.err
	case <-ctx.Done():
		if me.cancelWaiter(w, ctx.Err()) {
			return w.err
		}
		// A concurrent Set got there first: the wait succeeded.
		return nil
	}
}

// WaitTimeout blocks for at most d, returning whether the event released the
// caller before then.
func (me *Event) WaitTimeout(d time.Duration) bool {
	ok, _ := me.WaitTimeoutContext(context.Background(), d)
	return ok
}

// WaitTimeoutContext is WaitContext bounded by d. Expiry of d alone yields
// (false, nil); ctx being done is reported as an error, same as WaitContext.
func (me *Event) WaitTimeoutContext(ctx context.Context, d time.Duration) (bool, error) {
	waitCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	err := me.WaitContext(waitCtx)
	if err == nil {
		return true, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	return false, nil
}

// cancelWaiter attempts w's pending->cancelled transition, reporting whether
// it won against a concurrent Set. The waiter stays queued either way; Set
// discards settled entries lazily.
func (me *Event) cancelWaiter(w *waiter, err error) bool {
	me.mu.Lock()
	defer me.mu.Unlock()
	if !w.settle(err) {
		return false
	}
	me.stats.Cancellations.Add(1)
	return true
}

// numQueued includes entries that settled by cancellation but haven't been
// swept yet.
func (me *Event) numQueued() int {
	me.mu.Lock()
	defer me.mu.Unlock()
	return me.waiters.Len()
}
