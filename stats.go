package resetevent

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"sync/atomic"
)

// Count is an atomic counter. Plain int64 rather than atomic.Int64 so Stats
// snapshots can be returned by value.
type Count struct {
	n int64
}

var _ fmt.Stringer = (*Count)(nil)

func (me *Count) Add(n int64) {
	atomic.AddInt64(&me.n, n)
}

func (me *Count) Int64() int64 {
	return atomic.LoadInt64(&me.n)
}

func (me *Count) String() string {
	return strconv.FormatInt(me.Int64(), 10)
}

func (me *Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(me.Int64())
}

// Stats are cumulative counters for one Event. All fields must be Count for
// the snapshot copy to work.
type Stats struct {
	// Wait* calls that got past the already-done context check.
	Waits Count
	// Waits satisfied by the signaled flag without queueing.
	ImmediateGrants Count
	// Waiters released by Set.
	Released Count
	// Waiters that settled via context cancellation or timeout.
	Cancellations Count
	// Cancelled queue entries discarded by a later Set.
	SweptStale Count
}

// Stats returns a snapshot of the event's counters.
func (me *Event) Stats() Stats {
	return copyCountFields(&me.stats)
}

func copyCountFields[T any](src *T) (dst T) {
	srcValue := reflect.ValueOf(src).Elem()
	dstValue := reflect.ValueOf(&dst).Elem()
	for i := 0; i < reflect.TypeFor[T]().NumField(); i++ {
		n := srcValue.Field(i).Addr().Interface().(*Count).Int64()
		dstValue.Field(i).Addr().Interface().(*Count).Add(n)
	}
	return
}
