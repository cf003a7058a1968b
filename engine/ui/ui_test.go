package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
	"github.com/hubastard/hudlayer/engine/text"
)

// 7px per rune, 13px lines.
type measurer struct{}

func (measurer) Measure(s string) (float32, float32) {
	return float32(7 * utf8.RuneCountInString(s)), 13
}

func frame(c *Context, build func()) []DrawCmd {
	c.NewFrame(1.0 / 60)
	build()
	return c.Render()
}

func press(c *Context, x, y float64) {
	c.Input.Handle(core.EventMouseMove{X: x, Y: y})
	c.Input.Handle(core.EventMouseButton{Button: core.MouseLeft, Down: true})
}

func release(c *Context) {
	c.Input.Handle(core.EventMouseButton{Button: core.MouseLeft, Down: false})
}

func click(c *Context, x, y float64) {
	press(c, x, y)
	release(c)
}

func texts(cmds []DrawCmd) []string {
	var out []string
	for _, cmd := range cmds {
		if cmd.Kind == CmdText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func TestAutoResizeWindow(t *testing.T) {
	c := New(measurer{})
	build := func() {
		c.SetNextWindowPos(50, 50, CondFirstUseEver)
		require.True(t, c.Begin("Panel", nil, WindowAutoResize))
		c.Text("hello")
		c.End()
	}

	cmds := frame(c, build)

	require.Len(t, cmds, 4)
	require.Equal(t, DrawCmd{Kind: CmdRect, X: 50, Y: 50, W: 51, H: 48, Color: c.Style.WindowBg}, cmds[0])
	require.Equal(t, DrawCmd{Kind: CmdRect, X: 50, Y: 50, W: 51, H: 19, Color: c.Style.TitleBgActive}, cmds[1])
	require.Equal(t, "Panel", cmds[2].Text)
	require.Equal(t, [2]float32{54, 53}, [2]float32{cmds[2].X, cmds[2].Y})
	require.Equal(t, DrawCmd{Kind: CmdText, X: 58, Y: 77, Text: "hello", Color: c.Style.Text}, cmds[3])
	require.Equal(t, cmds, c.DrawData())
}

func TestWindowTitleSetsMinimumWidth(t *testing.T) {
	c := New(measurer{})
	open := true

	cmds := frame(c, func() {
		c.Begin("A fairly long title", &open, WindowAutoResize)
		c.Text("x")
		c.End()
	})

	// padding + title + inner spacing + close button + padding
	require.Equal(t, float32(4+133+4+13+4), cmds[0].W)
	require.Contains(t, texts(cmds), "x")
}

func TestSetNextWindowPosCond(t *testing.T) {
	c := New(measurer{})
	pos := func(x, y float32, cond Cond) []DrawCmd {
		return frame(c, func() {
			c.SetNextWindowPos(x, y, cond)
			c.Begin("W", nil, 0)
			c.End()
		})
	}

	cmds := pos(10, 20, CondFirstUseEver)
	require.Equal(t, [2]float32{10, 20}, [2]float32{cmds[0].X, cmds[0].Y})

	cmds = pos(300, 300, CondFirstUseEver)
	require.Equal(t, [2]float32{10, 20}, [2]float32{cmds[0].X, cmds[0].Y}, "first use only")

	cmds = pos(300, 300, CondAlways)
	require.Equal(t, [2]float32{300, 300}, [2]float32{cmds[0].X, cmds[0].Y})
}

func TestSetNextWindowSize(t *testing.T) {
	c := New(measurer{})
	build := func() {
		c.SetNextWindowSize(200, 100, CondFirstUseEver)
		c.Begin("W", nil, 0)
		c.Text("short")
		c.End()
	}

	cmds := frame(c, build)
	require.Equal(t, [2]float32{200, 100}, [2]float32{cmds[0].W, cmds[0].H})

	c.SetNextWindowSize(10, 5, CondAlways)
	cmds = frame(c, func() {
		c.Begin("W", nil, 0)
		c.End()
	})
	require.Equal(t, float32(15), cmds[0].W, "clamped to the title width")
	require.Equal(t, float32(19), cmds[0].H, "clamped to the title bar")
}

func buttonWindow(c *Context, clicks *int) func() {
	return func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		if c.Begin("W", nil, WindowAutoResize) {
			if c.Button("OK") {
				*clicks++
			}
		}
		c.End()
	}
}

func TestButtonClickAcrossFrames(t *testing.T) {
	c := New(measurer{})
	var clicks int
	build := buttonWindow(c, &clicks)

	frame(c, build)

	press(c, 25, 45)
	cmds := frame(c, build)
	require.Zero(t, clicks)
	require.True(t, c.WantCaptureMouse)
	require.Contains(t, cmds, DrawCmd{Kind: CmdRect, X: 18, Y: 37, W: 22, H: 19, Color: c.Style.ButtonActive})

	release(c)
	frame(c, build)
	require.Equal(t, 1, clicks)

	frame(c, build)
	require.Equal(t, 1, clicks, "one click per release")
}

func TestButtonClickWithinOneFrame(t *testing.T) {
	c := New(measurer{})
	var clicks int
	build := buttonWindow(c, &clicks)

	frame(c, build)
	click(c, 25, 45)
	frame(c, build)

	require.Equal(t, 1, clicks)
}

func TestButtonIgnoresPressOutside(t *testing.T) {
	c := New(measurer{})
	var clicks int
	build := buttonWindow(c, &clicks)

	frame(c, build)
	press(c, 200, 200)
	frame(c, build)
	require.False(t, c.WantCaptureMouse)

	c.Input.Handle(core.EventMouseMove{X: 25, Y: 45})
	frame(c, build)
	release(c)
	frame(c, build)

	require.Zero(t, clicks)
}

func TestButtonIgnoresReleaseOutside(t *testing.T) {
	c := New(measurer{})
	var clicks int
	build := buttonWindow(c, &clicks)

	frame(c, build)
	press(c, 25, 45)
	frame(c, build)
	c.Input.Handle(core.EventMouseMove{X: 200, Y: 200})
	release(c)
	frame(c, build)

	require.Zero(t, clicks)
}

func TestRightButtonIsIgnored(t *testing.T) {
	c := New(measurer{})
	var clicks int
	build := buttonWindow(c, &clicks)

	frame(c, build)
	c.Input.Handle(core.EventMouseMove{X: 25, Y: 45})
	c.Input.Handle(core.EventMouseButton{Button: core.MouseRight, Down: true})
	c.Input.Handle(core.EventMouseButton{Button: core.MouseRight, Down: false})
	frame(c, build)

	require.Zero(t, clicks)
}

func TestCheckboxToggles(t *testing.T) {
	c := New(measurer{})
	v := false
	var changed bool
	build := func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		c.Begin("W", nil, WindowAutoResize)
		changed = c.Checkbox("Enabled", &v)
		c.End()
	}

	cmds := frame(c, build)
	require.False(t, changed)
	for _, cmd := range cmds {
		require.NotEqual(t, c.Style.CheckMark, cmd.Color)
	}

	click(c, 25, 45)
	cmds = frame(c, build)
	require.True(t, changed)
	require.True(t, v)
	require.Contains(t, texts(cmds), "Enabled")

	var mark bool
	for _, cmd := range cmds {
		mark = mark || cmd.Color == c.Style.CheckMark
	}
	require.True(t, mark, "checked box draws its mark")

	click(c, 25, 45)
	frame(c, build)
	require.False(t, v)
}

func TestCloseButton(t *testing.T) {
	c := New(measurer{})
	open := true
	var began bool
	build := func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		c.SetNextWindowSize(200, 100, CondFirstUseEver)
		began = c.Begin("W", &open, 0)
		c.End()
	}

	cmds := frame(c, build)
	require.True(t, began)
	require.Contains(t, texts(cmds), "x")

	click(c, 199, 19)
	cmds = frame(c, build)
	require.False(t, open)
	require.False(t, began)
	require.Empty(t, cmds)

	cmds = frame(c, build)
	require.False(t, began)
	require.Empty(t, cmds)

	open = true
	cmds = frame(c, build)
	require.True(t, began)
	require.NotEmpty(t, cmds)
}

func TestDragTitleBar(t *testing.T) {
	c := New(measurer{})
	build := func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		c.SetNextWindowSize(200, 100, CondFirstUseEver)
		c.Begin("W", nil, 0)
		c.End()
	}

	frame(c, build)
	press(c, 50, 15)
	frame(c, build)

	c.Input.Handle(core.EventMouseMove{X: 150, Y: 115})
	cmds := frame(c, build)
	require.True(t, c.WantCaptureMouse)
	require.Equal(t, [2]float32{110, 110}, [2]float32{cmds[0].X, cmds[0].Y})

	release(c)
	frame(c, build)
	c.Input.Handle(core.EventMouseMove{X: 400, Y: 400})
	cmds = frame(c, build)
	require.Equal(t, [2]float32{110, 110}, [2]float32{cmds[0].X, cmds[0].Y})
}

func TestPressOnContentDoesNotDrag(t *testing.T) {
	c := New(measurer{})
	build := func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		c.SetNextWindowSize(200, 100, CondFirstUseEver)
		c.Begin("W", nil, 0)
		c.End()
	}

	frame(c, build)
	press(c, 50, 60)
	frame(c, build)
	c.Input.Handle(core.EventMouseMove{X: 150, Y: 160})
	cmds := frame(c, build)

	require.Equal(t, [2]float32{10, 10}, [2]float32{cmds[0].X, cmds[0].Y})
}

func TestClickBringsWindowToFront(t *testing.T) {
	c := New(measurer{})
	build := func() {
		c.SetNextWindowPos(0, 0, CondFirstUseEver)
		c.SetNextWindowSize(100, 100, CondFirstUseEver)
		c.Begin("A", nil, 0)
		c.End()
		c.SetNextWindowPos(50, 50, CondFirstUseEver)
		c.SetNextWindowSize(100, 100, CondFirstUseEver)
		c.Begin("B", nil, 0)
		c.End()
	}

	cmds := frame(c, build)
	require.Len(t, cmds, 6)
	require.Equal(t, float32(0), cmds[0].X)
	require.Equal(t, c.Style.TitleBg, cmds[1].Color)
	require.Equal(t, c.Style.TitleBgActive, cmds[4].Color)

	click(c, 20, 20)
	cmds = frame(c, build)
	require.Equal(t, float32(50), cmds[0].X, "B is now drawn first")
	require.Equal(t, c.Style.TitleBg, cmds[1].Color)
	require.Equal(t, float32(0), cmds[3].X)
	require.Equal(t, c.Style.TitleBgActive, cmds[4].Color)
}

func TestOverlapHoverGoesToFrontWindow(t *testing.T) {
	c := New(measurer{})
	var clicksA, clicksB int
	build := func() {
		c.SetNextWindowPos(0, 0, CondFirstUseEver)
		c.SetNextWindowSize(100, 100, CondFirstUseEver)
		c.Begin("A", nil, 0)
		if c.Button("AAAAAAAAAAAA") {
			clicksA++
		}
		c.End()
		c.SetNextWindowPos(5, 20, CondFirstUseEver)
		c.SetNextWindowSize(100, 100, CondFirstUseEver)
		c.Begin("B", nil, 0)
		if c.Button("B") {
			clicksB++
		}
		c.End()
	}

	frame(c, build)
	// Over A's button, but inside B which is in front.
	click(c, 60, 45)
	frame(c, build)

	require.Zero(t, clicksA)
	require.Zero(t, clicksB)
}

func TestUnseenWindowIsNotRendered(t *testing.T) {
	c := New(measurer{})
	frame(c, func() {
		c.Begin("A", nil, 0)
		c.End()
	})
	cmds := frame(c, func() {})
	require.Empty(t, cmds)
}

func TestSeparatorSpansContent(t *testing.T) {
	c := New(measurer{})
	cmds := frame(c, func() {
		c.SetNextWindowPos(10, 10, CondFirstUseEver)
		c.Begin("W", nil, WindowAutoResize)
		c.Text("hello world")
		c.Separator()
		c.Text("a")
		c.End()
	})

	require.Equal(t, float32(93), cmds[0].W)
	var sep *DrawCmd
	for i := range cmds {
		if cmds[i].Kind == CmdRect && cmds[i].H == 1 {
			sep = &cmds[i]
		}
	}
	require.NotNil(t, sep)
	require.Equal(t, float32(18), sep.X)
	require.Equal(t, float32(77), sep.W)
	require.Equal(t, float32(37+13+4), sep.Y)
}

func TestSameLine(t *testing.T) {
	c := New(measurer{})
	frame(c, func() {
		c.SetNextWindowPos(0, 0, CondFirstUseEver)
		c.Begin("W", nil, WindowAutoResize)
		c.Text("ab")
		x, y, w, _ := c.ItemRect()
		c.SameLine()
		c.Text("cd")
		x2, y2, _, _ := c.ItemRect()
		require.Equal(t, x+w+c.Style.ItemSpacing[0], x2)
		require.Equal(t, y, y2)

		c.Text("ef")
		_, y3, _, _ := c.ItemRect()
		require.Equal(t, y+13+c.Style.ItemSpacing[1], y3)

		c.Spacing()
		c.Text("gh")
		_, y4, _, _ := c.ItemRect()
		require.Equal(t, y3+13+2*c.Style.ItemSpacing[1], y4)
		c.End()
	})
}

func TestHiddenIDSuffix(t *testing.T) {
	require.NotEqual(t, hashStr(0, "OK##a"), hashStr(0, "OK##b"))
	require.Equal(t, "OK", visibleLabel("OK##a"))
	require.Equal(t, "", visibleLabel("##hidden"))

	c := New(measurer{})
	cmds := frame(c, func() {
		c.Begin("Panel##two", nil, WindowAutoResize)
		c.Button("OK##a")
		c.Button("OK##b")
		c.End()
	})
	require.Equal(t, []string{"Panel", "OK", "OK"}, texts(cmds))
}

func TestTextf(t *testing.T) {
	c := New(measurer{})
	cmds := frame(c, func() {
		c.Begin("W", nil, WindowAutoResize)
		c.Textf("n=%d pos=(%.1f, %.1f)", 5, 1.26, 2.0)
		c.End()
	})
	require.Contains(t, texts(cmds), "n=5 pos=(1.3, 2.0)")
}

func TestWidgetsOutsideWindow(t *testing.T) {
	c := New(measurer{})
	v := false
	c.NewFrame(0)
	require.False(t, c.Button("x"))
	require.False(t, c.Checkbox("x", &v))
	c.Text("x")
	c.Separator()
	c.End()
	require.Empty(t, c.Render())
}

func TestDemoWindow(t *testing.T) {
	c := New(measurer{})
	open := true
	var cmds []DrawCmd
	for i := 0; i < 3; i++ {
		cmds = frame(c, func() { c.ShowDemoWindow(&open) })
	}

	require.Equal(t, [2]float32{400, 100}, [2]float32{cmds[0].X, cmds[0].Y})
	all := texts(cmds)
	require.Contains(t, all, "UI Demo")
	require.Contains(t, all, "clicked 0 times")
	require.Contains(t, all, "Application average 16.667 ms/frame (60.0 FPS)")
	require.InDelta(t, 60, c.Framerate(), 0.01)
}

type recorder struct {
	rects, texts, images int
}

func (r *recorder) DrawRect(x, y, w, h float32, c colors.Color)     { r.rects++ }
func (r *recorder) DrawText(x, y float32, s string, c colors.Color) { r.texts++ }
func (r *recorder) DrawImage(x, y, w, h float32, img renderer2d.SubTexture2D, tint colors.Color) {
	r.images++
}

func TestDraw(t *testing.T) {
	c := New(measurer{})
	frame(c, func() {
		c.Begin("W", nil, WindowAutoResize)
		c.Text("a")
		c.Image(renderer2d.SubTexture2D{}, 16, 16, colors.White)
		c.ColorBox(colors.Red, 10)
		c.End()
	})

	r := &recorder{}
	c.Draw(r)

	require.Equal(t, 3, r.rects)
	require.Equal(t, 2, r.texts)
	require.Equal(t, 1, r.images)
}

func TestBackendMeasure(t *testing.T) {
	f, err := text.Default(13)
	require.NoError(t, err)
	b := Backend{Font: f}

	w, h := b.Measure("")
	require.Zero(t, w)
	require.Equal(t, text.LineHeight(f), h)

	c := New(b)
	require.Equal(t, text.LineHeight(f), c.lineH)
}
