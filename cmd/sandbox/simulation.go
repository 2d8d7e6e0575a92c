package main

import (
	"context"
	"math"
	"time"

	"github.com/hubastard/powder/engine/handoff"
)

// Renderable is the slice of simulation state the graphics side draws.
type Renderable struct {
	Tick  int
	Value float32 // slider target in [0, 100]
}

// simulate runs until ctx is cancelled, publishing one Renderable per
// period. The render loop only ever sees the latest one.
func simulate(ctx context.Context, out *handoff.Mailbox[Renderable], period time.Duration) error {
	t := time.NewTicker(period)
	defer t.Stop()

	for tick := 1; ; tick++ {
		out.Send(Renderable{Tick: tick, Value: wave(tick)})

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func wave(tick int) float32 {
	return float32(50 + 50*math.Sin(float64(tick)*0.7))
}
