package core

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Input accumulates OS events between frames. Hold state (pointer, mouse
// button, held keys) persists across frames; edge state (release flag,
// pressed and released key sets) lives until EndFrame.
type Input struct {
	mouse     mgl32.Vec2
	mouseDown bool
	held      map[Key]struct{}

	mouseReleased bool
	pressed       map[Key]struct{}
	released      map[Key]struct{}
}

func NewInput() *Input {
	return &Input{
		held:     map[Key]struct{}{},
		pressed:  map[Key]struct{}{},
		released: map[Key]struct{}{},
	}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventMouseMove:
		in.mouse = mgl32.Vec2{float32(e.X), float32(e.Y)}
	case EventMouseButton:
		if e.Button != MouseLeft {
			return
		}
		if e.Down {
			in.mouseDown = true
			return
		}
		in.mouseDown = false
		in.mouseReleased = true
	case EventKey:
		if e.Key == KeyUnknown {
			return
		}
		if e.Down {
			// Auto-repeat arrives as further presses of a held key.
			if _, ok := in.held[e.Key]; ok {
				return
			}
			in.held[e.Key] = struct{}{}
			in.pressed[e.Key] = struct{}{}
			return
		}
		delete(in.held, e.Key)
		in.released[e.Key] = struct{}{}
	}
}

// Snapshot builds the frame view of the current input. It does not modify
// the input state.
func (in *Input) Snapshot(dt time.Duration, fps int) Frame {
	return Frame{
		Mouse:         in.mouse,
		MouseDown:     in.mouseDown,
		MouseReleased: in.mouseReleased,
		KeysHeld:      newKeySet(in.held),
		KeysPressed:   newKeySet(in.pressed),
		KeysReleased:  newKeySet(in.released),
		DeltaTime:     dt,
		FPS:           fps,
	}
}

// EndFrame clears the edge state. Called once after every frame.
func (in *Input) EndFrame() {
	in.mouseReleased = false
	clear(in.pressed)
	clear(in.released)
}

func (in *Input) IsKeyDown(k Key) bool {
	_, ok := in.held[k]
	return ok
}

func (in *Input) Mouse() (float32, float32) { return in.mouse.X(), in.mouse.Y() }

// Frame is the read-only view of input and timing handed to every layer of
// one frame.
type Frame struct {
	Index int

	Mouse         mgl32.Vec2
	MouseDown     bool
	MouseReleased bool

	KeysHeld     KeySet
	KeysPressed  KeySet
	KeysReleased KeySet

	DeltaTime time.Duration
	FPS       int

	// Width and Height are the surface size in the units of Mouse.
	Width, Height float32
}

func (f *Frame) KeyHeld(k Key) bool     { return f.KeysHeld.Has(k) }
func (f *Frame) KeyPressed(k Key) bool  { return f.KeysPressed.Has(k) }
func (f *Frame) KeyReleased(k Key) bool { return f.KeysReleased.Has(k) }

// Dt is DeltaTime in seconds.
func (f *Frame) Dt() float32 { return float32(f.DeltaTime.Seconds()) }
