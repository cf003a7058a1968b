package ui

import "github.com/hubastard/hudlayer/engine/colors"

type demoState struct {
	clicks  int
	checked bool
}

var demoPalette = []colors.Color{
	colors.White, colors.Red, colors.Green, colors.Blue, colors.Yellow, colors.Gray,
}

// ShowDemoWindow shows every widget in one window. Pass a non-nil open to
// give it a close button.
func (c *Context) ShowDemoWindow(open *bool) {
	c.SetNextWindowPos(400, 100, CondFirstUseEver)
	if c.Begin("UI Demo", open, WindowAutoResize) {
		c.Text("Immediate-mode widgets")
		c.Separator()

		if c.Button("Click me") {
			c.demo.clicks++
		}
		c.SameLine()
		c.Textf("clicked %d times", c.demo.clicks)
		c.Checkbox("Checkbox", &c.demo.checked)
		if c.demo.checked {
			c.TextColored(c.Style.CheckMark, "checked")
		}
		c.Separator()

		c.Text("Palette")
		for i, col := range demoPalette {
			if i > 0 {
				c.SameLine()
			}
			c.ColorBox(col, c.lineH)
		}
		c.Spacing()
		c.Separator()

		if fps := c.Framerate(); fps > 0 {
			c.Textf("Application average %.3f ms/frame (%.1f FPS)", 1000/fps, fps)
		} else {
			c.TextColored(c.Style.TextDisabled, "Measuring framerate...")
		}
	}
	c.End()
}
