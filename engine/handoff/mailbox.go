// Package handoff passes values from a producer goroutine to the frame loop
// without blocking either side.
//
// A Mailbox holds at most one value. Send replaces a value the reader has not
// taken yet, so a producer running faster than the frame rate only ever
// delivers its latest value. Poll takes the pending value if there is one and
// returns immediately otherwise.
package handoff

import (
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
)

// Mailbox is a single-producer, single-consumer latest-value slot.
type Mailbox[T any] struct {
	ch chan T
}

func New[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Send stores v, dropping any value that has not been polled. It never
// blocks with a single producer.
func (m *Mailbox[T]) Send(v T) {
	for {
		select {
		case m.ch <- v:
			return
		default:
		}
		// Slot full: drop the stale value, unless the reader just took it.
		select {
		case <-m.ch:
		default:
		}
	}
}

// Poll returns the pending value, if any.
func (m *Mailbox[T]) Poll() (T, bool) {
	select {
	case v := <-m.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Receive returns a layer that polls mb once per frame and applies a
// received value to the application state. Frames without a new value keep
// the state unchanged.
func Receive[S, T any](mb *Mailbox[T], apply func(s *S, v T)) core.LayerFunc[S] {
	return func(_ *gfx.Canvas, _ *core.Frame, s *S) {
		if v, ok := mb.Poll(); ok {
			apply(s, v)
		}
	}
}
