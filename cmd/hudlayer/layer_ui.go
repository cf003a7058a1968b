package main

import (
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/scene"
	"github.com/hubastard/hudlayer/engine/ui"
)

// uiLayer opens and closes the UI frame and draws its command list with a
// top-left screen camera.
type uiLayer struct {
	ctx      *ui.Context
	backend  ui.Backend
	cam      *scene.ScreenCamera
	viewport *scene.ViewportController
}

func newUILayer(ctx *ui.Context, backend ui.Backend) *uiLayer {
	return &uiLayer{ctx: ctx, backend: backend}
}

func (l *uiLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreenCamera(w, h)
	l.viewport = scene.NewViewportController(l.cam)
}

func (l *uiLayer) OnDetach(*core.Engine) {}

func (l *uiLayer) OnUpdate(_ *core.Engine, dt float64) { l.ctx.NewFrame(dt) }

func (l *uiLayer) OnRender(*core.Engine) {
	l.ctx.Render()
	l.backend.R2D.BeginScene(l.cam.VP())
	l.ctx.Draw(l.backend)
	l.backend.R2D.EndScene()
}

func (l *uiLayer) OnEvent(_ *core.Engine, ev core.Event) bool {
	l.ctx.Input.Handle(ev)
	l.viewport.OnEvent(ev)
	return false
}
