// Package platform binds the engine to GLFW windows and an OpenGL 3.3
// presenter.
package platform

import (
	"github.com/hubastard/powder/engine/core"
	"github.com/hubastard/powder/engine/gfx"
	glbackend "github.com/hubastard/powder/engine/gfx/gl"
)

// Backend returns the GLFW + OpenGL collaborators for core.New.
func Backend() core.Backend {
	return core.Backend{
		NewWindow: func(cfg core.Config) (core.Window, error) {
			w, err := NewGLFWWindow(cfg)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
		NewPresenter: func(core.Window) (gfx.Presenter, error) {
			p, err := glbackend.NewPresenter()
			if err != nil {
				return nil, err
			}
			core.Logger().Info("GL ready", "version", p.Version())
			return p, nil
		},
	}
}
