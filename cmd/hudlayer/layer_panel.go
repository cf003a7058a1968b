package main

import (
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/ui"
)

// panelLayer declares the control panel and, when enabled, the demo
// window. Closing the panel or pressing "Exit Program" quits.
type panelLayer struct {
	ctx *ui.Context
	z   *zorderLayer

	open     bool
	showDemo bool
}

func newPanelLayer(ctx *ui.Context, z *zorderLayer) *panelLayer {
	return &panelLayer{ctx: ctx, z: z, open: true}
}

func (l *panelLayer) OnAttach(*core.Engine) {}
func (l *panelLayer) OnDetach(*core.Engine) {}

func (l *panelLayer) OnUpdate(e *core.Engine, _ float64) {
	c := l.ctx

	c.SetNextWindowPos(50, 50, ui.CondFirstUseEver)
	if c.Begin("Transparent Control Panel", &l.open, ui.WindowAutoResize) {
		c.Text("Dynamic Z-Order Overlay")
		c.Separator()

		c.Checkbox("Show Demo Window", &l.showDemo)
		c.Checkbox("Enable Z-Order Management", &l.z.Enabled)
		c.Separator()

		mx, my := c.Mouse()
		c.Textf("Mouse Position: (%.1f, %.1f)", mx, my)
		c.Textf("FPS: %.1f", c.Framerate())
		c.Textf("Foreground: %s", l.z.ForegroundTitle())
		c.Textf("Last Z-Order Action: %s", l.z.LastAction())
		c.Separator()

		c.Text("Press F1 to bring window to top")
		c.Text("Window should appear in taskbar now!")
		if c.Button("Bring to Front") {
			l.z.BringToFront()
		}
		c.SameLine()
		if c.Button("Exit Program") {
			e.Quit()
		}
	}
	c.End()

	if !l.open {
		e.Quit()
	}
	if l.showDemo {
		c.ShowDemoWindow(&l.showDemo)
	}
}

func (l *panelLayer) OnRender(*core.Engine)                 {}
func (l *panelLayer) OnEvent(*core.Engine, core.Event) bool { return false }
