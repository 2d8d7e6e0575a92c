package main

import (
	"fmt"

	"github.com/hubastard/powder/engine/assets"
	"github.com/hubastard/powder/engine/colors"
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
	"github.com/hubastard/powder/engine/handoff"
	"github.com/hubastard/powder/engine/platform"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// SandboxState is the application state shared by the render layers.
type SandboxState struct {
	Renderable Renderable
	Font       *assets.Font
	Slider     slider
	Clicks     int
	ShowDebug  bool
}

type slider struct {
	value float32
	tick  int // Renderable.Tick the tween targets
	tween *gween.Tween
}

func render(cfg core.Config, fontPath string, mb *handoff.Mailbox[Renderable]) error {
	eng, err := core.New(SandboxState{ShowDebug: true}, cfg, platform.Backend())
	if err != nil {
		return err
	}

	// Load after-init assets
	var font *assets.Font
	if fontPath == "" {
		font = assets.MustParseFont(goregular.TTF)
	} else {
		font = assets.MustLoadFont(fontPath)
	}
	defer font.Close()
	eng.State().Font = font

	eng.Push(handoff.Receive(mb, func(s *SandboxState, r Renderable) {
		s.Renderable = r
	}))
	eng.Push(gameLayer{})
	eng.Push(&debugLayer{})

	return eng.Start()
}

type gameLayer struct{}

func (gameLayer) Name() string { return "game" }

func (gameLayer) Render(c *gfx.Canvas, f *core.Frame, s *SandboxState) {
	s.Slider.update(s.Renderable, f.Dt())
	drawHorizontalSlider(c, 50, 50, 400, 0, 100, s.Slider.value)

	face := s.Font.Face(24 * c.ScaleFactor())
	if drawButton(c, f, face, 50, 90, 160, 48, "Click") {
		s.Clicks++
	}
	c.SetPaint(colors.White)
	c.DrawText(face, fmt.Sprintf("clicks: %d  tick: %d", s.Clicks, s.Renderable.Tick), 230, 114, 0, 0.5)
}

// update eases the displayed value towards the latest simulation value.
func (sl *slider) update(r Renderable, dt float32) {
	if r.Tick != sl.tick {
		sl.tick = r.Tick
		sl.tween = gween.New(sl.value, r.Value, 0.6, ease.OutCubic)
	}
	if sl.tween == nil {
		return
	}
	v, done := sl.tween.Update(dt)
	sl.value = v
	if done {
		sl.tween = nil
	}
}
