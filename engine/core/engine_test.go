package core

import (
	"errors"
	"testing"
	"time"

	"github.com/hubastard/powder/engine/colors"
	"github.com/hubastard/powder/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow replays one batch of events per PollEvents call and requests
// close once the script runs out.
type fakeWindow struct {
	script   [][]Event
	cb       func(Event)
	w, h     int
	scale    float32
	swapErr  error
	ctxErr   error
	swaps    int
	polls    int
	destroys int
}

func (w *fakeWindow) MakeContextCurrent() error       { return w.ctxErr }
func (w *fakeWindow) SetEventCallback(cb func(Event)) { w.cb = cb }
func (w *fakeWindow) FramebufferSize() (int, int)     { return w.w, w.h }
func (w *fakeWindow) ContentScale() float32           { return w.scale }
func (w *fakeWindow) Destroy()                        { w.destroys++ }

func (w *fakeWindow) SwapBuffers() error {
	w.swaps++
	return w.swapErr
}

func (w *fakeWindow) PollEvents() {
	w.polls++
	if len(w.script) == 0 {
		w.cb(EventCloseRequested{})
		return
	}
	batch := w.script[0]
	w.script = w.script[1:]
	for _, ev := range batch {
		w.cb(ev)
	}
}

type fakePresenter struct {
	presents int
	released int
	err      error
	lastW    int
	lastH    int
}

func (p *fakePresenter) Present(_ []byte, w, h int) error {
	p.presents++
	p.lastW, p.lastH = w, h
	return p.err
}

func (p *fakePresenter) Release() { p.released++ }

func testBackend(win *fakeWindow, pres *fakePresenter) Backend {
	return Backend{
		NewWindow:    func(Config) (Window, error) { return win, nil },
		NewPresenter: func(Window) (gfx.Presenter, error) { return pres, nil },
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	return cfg
}

type appState struct {
	frames   []Frame
	counter  int
	released []bool
}

func TestNewConstructionFailures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("window", func(t *testing.T) {
		b := Backend{
			NewWindow:    func(Config) (Window, error) { return nil, boom },
			NewPresenter: func(Window) (gfx.Presenter, error) { t.Fatal("renderer built after window failure"); return nil, nil },
		}
		e, err := New(appState{}, testConfig(), b)
		assert.Nil(t, e)
		var ce *ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, StageWindow, ce.Stage)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "could not build window")
	})

	t.Run("context", func(t *testing.T) {
		win := &fakeWindow{w: 64, h: 48, ctxErr: boom}
		e, err := New(appState{}, testConfig(), testBackend(win, &fakePresenter{}))
		assert.Nil(t, e)
		var ce *ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, StageContext, ce.Stage)
		assert.Equal(t, 1, win.destroys)
	})

	t.Run("renderer", func(t *testing.T) {
		win := &fakeWindow{w: 64, h: 48}
		b := Backend{
			NewWindow:    func(Config) (Window, error) { return win, nil },
			NewPresenter: func(Window) (gfx.Presenter, error) { return nil, boom },
		}
		_, err := New(appState{}, testConfig(), b)
		var ce *ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, StageRenderer, ce.Stage)
		assert.Contains(t, err.Error(), "could not create renderer")
		assert.Equal(t, 1, win.destroys)
	})

	t.Run("surface", func(t *testing.T) {
		win := &fakeWindow{w: 64, h: 48}
		pres := &fakePresenter{}
		b := testBackend(win, pres)
		b.NewSurface = func(int, int, gfx.Presenter) (*gfx.Canvas, error) { return nil, boom }
		e, err := New(appState{}, testConfig(), b)
		assert.Nil(t, e)
		var ce *ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, StageSurface, ce.Stage)
		assert.Equal(t, 1, pres.released)
		assert.Equal(t, 1, win.destroys)
	})

	t.Run("surface falls back to config size", func(t *testing.T) {
		win := &fakeWindow{}
		b := testBackend(win, &fakePresenter{})
		var gotW, gotH int
		b.NewSurface = func(w, h int, p gfx.Presenter) (*gfx.Canvas, error) {
			gotW, gotH = w, h
			return gfx.NewCanvas(w, h, p)
		}
		_, err := New(appState{}, testConfig(), b)
		require.NoError(t, err)
		assert.Equal(t, 64, gotW)
		assert.Equal(t, 48, gotH)
	})

	t.Run("config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Width = 0
		_, err := New(appState{}, cfg, testBackend(&fakeWindow{}, &fakePresenter{}))
		var ce *ConstructionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, StageWindow, ce.Stage)
	})

	t.Run("backend", func(t *testing.T) {
		_, err := New(appState{}, testConfig(), Backend{})
		assert.Error(t, err)
	})
}

func TestEngineRunsFramesUntilClose(t *testing.T) {
	win := &fakeWindow{w: 64, h: 48, scale: 2, script: [][]Event{
		{EventMouseMove{X: 3, Y: 4}, EventMouseButton{Down: true}},
		{EventMouseButton{}, EventKey{Key: KeyA, Down: true}},
		{},
		{EventKey{Key: KeyA}},
	}}
	pres := &fakePresenter{}
	e, err := New(appState{}, testConfig(), testBackend(win, pres))
	require.NoError(t, err)
	assert.Equal(t, PhaseReady, e.Phase())

	clock := at(0)
	e.now = func() time.Time {
		clock = clock.Add(16 * time.Millisecond)
		return clock
	}

	e.PushFunc(func(_ *gfx.Canvas, f *Frame, s *appState) {
		s.frames = append(s.frames, *f)
		s.counter++
	})
	e.PushFunc(func(c *gfx.Canvas, f *Frame, s *appState) {
		s.released = append(s.released, f.MouseReleased)
		s.counter *= 2
		c.SetRGB(1, 1, 1)
		c.DrawLine(0, 0, float64(f.Mouse.X()), float64(f.Mouse.Y()))
		_ = c.Stroke()
	})

	require.NoError(t, e.Start())
	assert.Equal(t, PhaseStopped, e.Phase())

	s := e.State()
	require.Len(t, s.frames, 4)
	assert.Equal(t, []bool{false, true, false, false}, s.released)

	assert.True(t, s.frames[0].MouseDown)
	assert.Equal(t, float32(3), s.frames[0].Mouse.X())
	assert.False(t, s.frames[1].MouseDown)
	assert.True(t, s.frames[1].KeyPressed(KeyA))
	assert.True(t, s.frames[2].KeyHeld(KeyA))
	assert.False(t, s.frames[2].KeyPressed(KeyA))
	assert.True(t, s.frames[3].KeyReleased(KeyA))
	assert.False(t, s.frames[3].KeyHeld(KeyA))

	for i, f := range s.frames {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, float32(32), f.Width)
		assert.Equal(t, float32(24), f.Height)
	}
	assert.Zero(t, s.frames[0].DeltaTime)
	assert.Equal(t, 16*time.Millisecond, s.frames[1].DeltaTime)

	// counter: ((((0+1)*2+1)*2+1)*2+1)*2
	assert.Equal(t, 30, s.counter)

	assert.Equal(t, 4, e.Frames())
	assert.Equal(t, 4, win.swaps)
	assert.Equal(t, 4, pres.presents)
	assert.Equal(t, 64, pres.lastW)
	assert.Equal(t, 48, pres.lastH)
	assert.Equal(t, 1, pres.released)
	assert.Equal(t, 1, win.destroys)
	assert.Equal(t, 5, win.polls)
}

func TestEngineRedrawRequestsCoalesce(t *testing.T) {
	win := &fakeWindow{w: 4, h: 4, script: [][]Event{
		{EventRedrawRequested{}},
		{EventRedrawRequested{}, EventRedrawRequested{}},
	}}
	e, err := New(0, testConfig(), testBackend(win, &fakePresenter{}))
	require.NoError(t, err)
	e.PushFunc(func(_ *gfx.Canvas, _ *Frame, n *int) { *n++ })

	require.NoError(t, e.Start())
	assert.Equal(t, 3, win.polls)
	assert.Equal(t, 2, *e.State(), "one frame per poll")
	assert.Equal(t, 2, win.swaps)
}

func TestEngineLoopDestroyedStops(t *testing.T) {
	win := &fakeWindow{w: 4, h: 4, script: [][]Event{
		{},
		{EventLoopDestroyed{}},
		{},
	}}
	pres := &fakePresenter{}
	e, err := New(0, testConfig(), testBackend(win, pres))
	require.NoError(t, err)
	e.PushFunc(func(_ *gfx.Canvas, _ *Frame, n *int) { *n++ })

	require.NoError(t, e.Start())
	assert.Equal(t, 2, win.polls)
	assert.Equal(t, 1, *e.State(), "no frame after the loop is destroyed")
	assert.Equal(t, PhaseStopped, e.Phase())
	assert.Equal(t, 1, win.destroys)
	assert.Equal(t, 1, pres.released)
}

func TestEngineSwapFailureStopsLoop(t *testing.T) {
	boom := errors.New("context lost")
	win := &fakeWindow{w: 8, h: 8, swapErr: boom, script: [][]Event{{}, {}, {}}}
	pres := &fakePresenter{}
	e, err := New(0, testConfig(), testBackend(win, pres))
	require.NoError(t, err)
	e.PushFunc(func(_ *gfx.Canvas, _ *Frame, n *int) { *n++ })

	err = e.Start()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "could not swap buffers")
	assert.Equal(t, 1, win.swaps, "no retry")
	assert.Equal(t, 1, *e.State())
	assert.Equal(t, PhaseStopped, e.Phase())
	assert.Equal(t, 1, win.destroys)
}

func TestEnginePresentFailureStopsLoop(t *testing.T) {
	boom := errors.New("upload failed")
	win := &fakeWindow{w: 8, h: 8, script: [][]Event{{}, {}}}
	e, err := New(struct{}{}, testConfig(), testBackend(win, &fakePresenter{err: boom}))
	require.NoError(t, err)

	err = e.Start()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "could not present frame")
	assert.Zero(t, win.swaps)
}

func TestEngineKeepsSizeWhileMinimized(t *testing.T) {
	win := &fakeWindow{w: 20, h: 10, scale: 1, script: [][]Event{{}, {}}}
	pres := &fakePresenter{}
	e, err := New(struct{}{}, testConfig(), testBackend(win, pres))
	require.NoError(t, err)

	frames := 0
	e.PushFunc(func(*gfx.Canvas, *Frame, *struct{}) {
		frames++
		win.w, win.h = 0, 0
	})
	require.NoError(t, e.Start())
	assert.Equal(t, 2, frames)
	assert.Equal(t, 20, pres.lastW)
	assert.Equal(t, 10, pres.lastH)
}

func TestEngineClearsToConfiguredColor(t *testing.T) {
	win := &fakeWindow{w: 4, h: 4, scale: 1, script: [][]Event{{}}}
	cfg := testConfig()
	cfg.ClearColor = colors.Blue
	e, err := New(struct{}{}, cfg, testBackend(win, &fakePresenter{}))
	require.NoError(t, err)

	var px [4]byte
	e.PushFunc(func(c *gfx.Canvas, _ *Frame, _ *struct{}) {
		copy(px[:], c.ResizeTarget().Data())
	})
	require.NoError(t, e.Start())
	assert.Equal(t, [4]byte{0, 0, 255, 255}, px)
}

func TestEngineOneWayStart(t *testing.T) {
	win := &fakeWindow{w: 4, h: 4, script: [][]Event{{}}}
	e, err := New(struct{}{}, testConfig(), testBackend(win, &fakePresenter{}))
	require.NoError(t, err)

	var pushErr any
	e.PushFunc(func(*gfx.Canvas, *Frame, *struct{}) {
		defer func() { pushErr = recover() }()
		e.PushFunc(func(*gfx.Canvas, *Frame, *struct{}) {})
	})
	require.NoError(t, e.Start())
	assert.Equal(t, ErrStarted, pushErr)

	assert.PanicsWithValue(t, ErrStarted, func() { _ = e.Start() })
	assert.PanicsWithValue(t, ErrStarted, func() {
		e.Push(LayerFunc[struct{}](func(*gfx.Canvas, *Frame, *struct{}) {}))
	})
}

func TestEngineLayerPanicPropagates(t *testing.T) {
	win := &fakeWindow{w: 4, h: 4, script: [][]Event{{}}}
	pres := &fakePresenter{}
	e, err := New(struct{}{}, testConfig(), testBackend(win, pres))
	require.NoError(t, err)
	e.PushFunc(func(*gfx.Canvas, *Frame, *struct{}) { panic("bad layer") })

	assert.PanicsWithValue(t, "bad layer", func() { _ = e.Start() })
	assert.Equal(t, 1, win.destroys, "resources are released while unwinding")
	assert.Equal(t, 1, pres.released)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "shutting down", PhaseShuttingDown.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}
