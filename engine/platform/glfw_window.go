package platform

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/powder/engine/assets"
	"github.com/hubastard/powder/engine/core"
)

// GLFWWindow implements core.Window and pushes translated events to the
// engine through the installed callback.
type GLFWWindow struct {
	w     *glfw.Window
	onEv  func(core.Event)
	vsync bool
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfw.False) // shown once positioned

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.SetSizeLimits(cfg.Width, cfg.Height, glfw.DontCare, glfw.DontCare)
	if cfg.X >= 0 && cfg.Y >= 0 {
		win.SetPos(cfg.X, cfg.Y)
	}
	if cfg.Icon != "" {
		if img, err := assets.LoadImage(cfg.Icon); err != nil {
			core.Logger().Warn("window icon not loaded", "err", err)
		} else {
			win.SetIcon([]image.Image{img})
		}
	}
	win.Show()

	gw := &GLFWWindow{w: win, vsync: cfg.VSync}

	// Callbacks -> translate to core.Event
	win.SetCloseCallback(func(w *glfw.Window) {
		// The engine decides when to stop; keep the flag clear.
		w.SetShouldClose(false)
		gw.emit(core.EventCloseRequested{})
	})
	win.SetRefreshCallback(func(*glfw.Window) { gw.emit(core.EventRedrawRequested{}) })
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gw.emit(core.EventResize{W: w, H: h})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		gw.emit(core.EventMouseButton{
			Button: translateButton(b),
			Down:   action != glfw.Release,
			Mods:   translateMods(mods),
		})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		gw.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		gw.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})

	return gw, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// core.Window impl

func (g *GLFWWindow) MakeContextCurrent() (err error) {
	defer recoverGLFW(&err)
	g.w.MakeContextCurrent()
	if g.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return nil
}

func (g *GLFWWindow) SwapBuffers() (err error) {
	defer recoverGLFW(&err)
	g.w.SwapBuffers()
	return nil
}

func (g *GLFWWindow) Destroy() {
	g.onEv = nil
	g.w.Destroy()
	glfw.Terminate()
}

func (g *GLFWWindow) ContentScale() float32 {
	fw, _ := g.w.GetFramebufferSize()
	ww, _ := g.w.GetSize()
	if fw <= 0 || ww <= 0 {
		return 1
	}
	return float32(fw) / float32(ww)
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// recoverGLFW turns the panics glfw raises for platform errors into an
// error return.
func recoverGLFW(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*err = e
		return
	}
	*err = fmt.Errorf("glfw: %v", r)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
