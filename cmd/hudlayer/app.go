package main

import (
	"github.com/hubastard/hudlayer/engine/assets"
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/desktop"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
	"github.com/hubastard/hudlayer/engine/text"
	"github.com/hubastard/hudlayer/engine/ui"
)

const (
	fontSize = 15
	maxQuads = 10000
)

// App owns the layer stack. Layers update bottom to top: the UI layer
// starts the frame, the Z-order layer runs its policy, and the panel
// declares the windows.
type App struct {
	layers core.LayerStack
	desk   desktopAPI
}

func NewApp() *App { return &App{desk: desktop.Desktop{}} }

func (a *App) OnStart(e *core.Engine) {
	log := core.Logger()

	vs, fs, err := assets.QuadShaders()
	if err != nil {
		log.Error("load shaders", "err", err)
		e.Quit()
		return
	}
	r2d, err := renderer2d.New(e.Renderer, vs, fs, maxQuads)
	if err != nil {
		log.Error("create 2D renderer", "err", err)
		e.Quit()
		return
	}
	font, err := text.Default(fontSize)
	if err == nil {
		err = font.Upload(e.Renderer)
	}
	if err != nil {
		log.Error("load font", "err", err)
		e.Quit()
		return
	}

	backend := ui.Backend{R2D: r2d, Font: font}
	ctx := ui.New(backend)
	z := newZOrderLayer(a.desk)

	a.push(e, newUILayer(ctx, backend))
	a.push(e, z)
	a.push(e, newPanelLayer(ctx, z))
}

func (a *App) push(e *core.Engine, l core.Layer) {
	a.layers.Push(l)
	l.OnAttach(e)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.layers.ForEach(func(l core.Layer) { l.OnUpdate(e, dt) })
}

func (a *App) OnRender(e *core.Engine) {
	a.layers.ForEach(func(l core.Layer) { l.OnRender(e) })
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	a.layers.ForEachReverse(func(l core.Layer) bool { return l.OnEvent(e, ev) })
}

func (a *App) OnShutdown(e *core.Engine) {
	for {
		l, ok := a.layers.Pop()
		if !ok {
			return
		}
		l.OnDetach(e)
	}
}
