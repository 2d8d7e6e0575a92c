package core

import "github.com/hubastard/powder/engine/gfx"

// Window is the OS window and graphics context the engine drives.
type Window interface {
	MakeContextCurrent() error
	// SetEventCallback installs the sink for translated OS events. Events are
	// delivered synchronously from PollEvents.
	SetEventCallback(cb func(Event))
	PollEvents()
	FramebufferSize() (int, int)
	// ContentScale is the framebuffer to window coordinate ratio.
	ContentScale() float32
	SwapBuffers() error
	Destroy()
}

// Backend creates the platform collaborators of an Engine.
type Backend struct {
	NewWindow func(Config) (Window, error)
	// NewPresenter runs with the window's context current.
	NewPresenter func(Window) (gfx.Presenter, error)
	// NewSurface builds the drawing surface. Defaults to gfx.NewCanvas.
	NewSurface func(w, h int, p gfx.Presenter) (*gfx.Canvas, error)
}

// Event model. Unknown events are ignored by the engine.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventRedrawRequested struct{}

func (EventRedrawRequested) isEvent() {}

type EventLoopDestroyed struct{}

func (EventLoopDestroyed) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseOther
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
