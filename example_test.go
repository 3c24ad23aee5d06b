package resetevent_test

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dannyzb/resetevent"
)

func ExampleNewAutoResetEvent() {
	ready := resetevent.NewAutoResetEvent(false)
	done := resetevent.NewAutoResetEvent(false)
	var n int
	go func() {
		ready.Wait()
		n *= 2
		done.Set()
	}()
	n = 21
	ready.Set()
	done.Wait()
	fmt.Println(n)
	// Output: 42
}

func ExampleNewManualResetEvent() {
	gate := resetevent.NewManualResetEvent(false)
	var eg errgroup.Group
	for i := 0; i < 3; i++ {
		eg.Go(func() error {
			gate.Wait()
			return nil
		})
	}
	// One Set lets every worker through.
	gate.Set()
	if err := eg.Wait(); err != nil {
		panic(err)
	}
	fmt.Println("all through the gate")
	// Output: all through the gate
}
