package core

import (
	"strconv"

	"github.com/hubastard/powder/engine/gfx"
	"github.com/hubastard/powder/engine/profiler"
)

// Layer is one step of the per-frame pipeline. Layers run in push order and
// share the frame and the application state; changes made by a layer are
// visible to the layers after it.
type Layer[S any] interface {
	Render(c *gfx.Canvas, f *Frame, s *S)
}

// LayerFunc adapts a function to Layer.
type LayerFunc[S any] func(c *gfx.Canvas, f *Frame, s *S)

func (fn LayerFunc[S]) Render(c *gfx.Canvas, f *Frame, s *S) { fn(c, f, s) }

// Named is implemented by layers that want a name in profiles and logs.
type Named interface {
	Name() string
}

type namedLayer[S any] struct {
	Layer[S]
	name string
}

// LayerStack is append-only: layers are declared before the loop starts
// and live as long as the engine.
type LayerStack[S any] struct{ list []namedLayer[S] }

func (ls *LayerStack[S]) Push(l Layer[S]) {
	name := "layer#" + strconv.Itoa(len(ls.list))
	if n, ok := l.(Named); ok && n.Name() != "" {
		name = n.Name()
	}
	ls.list = append(ls.list, namedLayer[S]{Layer: l, name: name})
}

func (ls *LayerStack[S]) Len() int { return len(ls.list) }

// Names lists the layers in dispatch order.
func (ls *LayerStack[S]) Names() []string {
	out := make([]string, len(ls.list))
	for i, l := range ls.list {
		out[i] = l.name
	}
	return out
}

// Dispatch runs every layer once, in push order. A panicking layer aborts
// the dispatch.
func (ls *LayerStack[S]) Dispatch(c *gfx.Canvas, f *Frame, s *S) {
	for _, l := range ls.list {
		end := profiler.Start(l.name)
		l.Render(c, f, s)
		end()
	}
}
