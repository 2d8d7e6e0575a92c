package core

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/powder/engine/gfx"
	"github.com/hubastard/powder/engine/profiler"
)

// Phase is the lifecycle position of an Engine.
type Phase int

const (
	PhaseConstructing Phase = iota
	PhaseReady
	PhaseRunning
	PhaseShuttingDown
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseConstructing:
		return "constructing"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseShuttingDown:
		return "shutting down"
	case PhaseStopped:
		return "stopped"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Engine owns the window, the drawing surface, the input and timing state,
// the layer stack and the application state S.
//
// An Engine is configured with Push while Ready; Start hands it to the frame
// loop for good.
type Engine[S any] struct {
	cfg    Config
	state  S
	win    Window
	canvas *gfx.Canvas
	input  *Input
	clock  *Clock
	layers LayerStack[S]

	phase  Phase
	redraw bool
	frames int
	err    error
	now    func() time.Time
	start  time.Time
}

// New creates the window, makes its context current and builds the drawing
// surface. On failure everything acquired so far is released and a
// *ConstructionError is returned.
func New[S any](state S, cfg Config, b Backend) (*Engine[S], error) {
	if b.NewWindow == nil || b.NewPresenter == nil {
		return nil, &ConstructionError{Stage: StageWindow, Err: errors.New("incomplete backend")}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConstructionError{Stage: StageWindow, Err: err}
	}

	win, err := b.NewWindow(cfg)
	if err != nil {
		return nil, &ConstructionError{Stage: StageWindow, Err: err}
	}
	if err := win.MakeContextCurrent(); err != nil {
		win.Destroy()
		return nil, &ConstructionError{Stage: StageContext, Err: err}
	}

	pres, err := b.NewPresenter(win)
	if err != nil {
		win.Destroy()
		return nil, &ConstructionError{Stage: StageRenderer, Err: err}
	}

	w, h := win.FramebufferSize()
	if w < 1 || h < 1 {
		w, h = cfg.Width, cfg.Height
	}
	newSurface := b.NewSurface
	if newSurface == nil {
		newSurface = gfx.NewCanvas
	}
	canvas, err := newSurface(w, h, pres)
	if err != nil {
		pres.Release()
		win.Destroy()
		return nil, &ConstructionError{Stage: StageSurface, Err: err}
	}

	return &Engine[S]{
		cfg:    cfg,
		state:  state,
		win:    win,
		canvas: canvas,
		input:  NewInput(),
		clock:  NewClock(),
		phase:  PhaseReady,
		now:    time.Now,
	}, nil
}

// Push appends a layer. Only valid before Start.
func (e *Engine[S]) Push(l Layer[S]) {
	if e.phase != PhaseReady {
		panic(ErrStarted)
	}
	e.layers.Push(l)
}

// PushFunc appends a function layer. Only valid before Start.
func (e *Engine[S]) PushFunc(fn func(c *gfx.Canvas, f *Frame, s *S)) {
	e.Push(LayerFunc[S](fn))
}

// State gives access to the application state outside the frame loop, e.g.
// to store assets loaded after construction. It panics while the loop runs.
func (e *Engine[S]) State() *S {
	if e.phase == PhaseRunning || e.phase == PhaseShuttingDown {
		panic(ErrStarted)
	}
	return &e.state
}

func (e *Engine[S]) Phase() Phase   { return e.phase }
func (e *Engine[S]) Config() Config { return e.cfg }

// Frames reports how many frames have been presented.
func (e *Engine[S]) Frames() int { return e.frames }

func (e *Engine[S]) Uptime() time.Duration {
	if e.start.IsZero() {
		return 0
	}
	return e.now().Sub(e.start)
}

// Start runs the frame loop on the calling OS thread until the window is
// closed, then releases the surface and the window. A frame that cannot be
// presented stops the loop and its error is returned; nothing is retried.
func (e *Engine[S]) Start() error {
	if e.phase != PhaseReady {
		panic(ErrStarted)
	}
	// Graphics contexts are bound to the thread that made them current.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	e.phase = PhaseRunning
	e.start = e.now()
	defer e.teardown()

	Logger().Info("engine started", "title", e.cfg.Title, "layers", e.layers.Names())

	e.win.SetEventCallback(e.handleEvent)
	e.redraw = true
	for e.phase == PhaseRunning {
		e.win.PollEvents()
		if e.phase == PhaseRunning && e.redraw {
			e.redraw = false
			if err := e.frame(); err != nil {
				Logger().Error("frame failed", "frame", e.frames, "err", err)
				e.err = err
				e.phase = PhaseShuttingDown
			}
		}
	}
	return e.err
}

func (e *Engine[S]) handleEvent(ev Event) {
	if e.phase != PhaseRunning {
		return
	}
	switch v := ev.(type) {
	case EventCloseRequested, EventLoopDestroyed:
		e.phase = PhaseShuttingDown
	case EventRedrawRequested:
		// Rendered by the loop; several requests in one poll are one frame.
		e.redraw = true
	case EventResize:
		Logger().Debug("window resized", "w", v.W, "h", v.H)
	default:
		e.input.Handle(ev)
	}
}

func (e *Engine[S]) frame() error {
	end := profiler.Start("frame")
	defer end()

	dt, fps := e.clock.Tick(e.now())
	f := e.input.Snapshot(dt, fps)
	f.Index = e.frames

	// A minimized window reports an empty framebuffer; keep the last size.
	if w, h := e.win.FramebufferSize(); w > 0 && h > 0 {
		if err := e.canvas.SetSize(w, h, e.win.ContentScale()); err != nil {
			return fmt.Errorf("could not resize canvas: %w", err)
		}
	}
	lw, lh := e.canvas.LogicalSize()
	f.Width, f.Height = float32(lw), float32(lh)
	e.canvas.Clear(e.cfg.ClearColor)

	e.layers.Dispatch(e.canvas, &f, &e.state)

	if err := e.canvas.Flush(); err != nil {
		return fmt.Errorf("could not present frame: %w", err)
	}
	if err := e.win.SwapBuffers(); err != nil {
		return fmt.Errorf("could not swap buffers: %w", err)
	}

	e.input.EndFrame()
	e.frames++
	e.redraw = true
	return nil
}

func (e *Engine[S]) teardown() {
	e.phase = PhaseShuttingDown
	e.win.SetEventCallback(nil)
	e.canvas.Release()
	e.win.Destroy()
	e.phase = PhaseStopped
	Logger().Info("engine stopped", "frames", e.frames, "uptime", e.Uptime())
}
