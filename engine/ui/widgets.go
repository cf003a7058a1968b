package ui

import (
	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
)

// Widgets are no-ops outside a Begin/End pair.

func (c *Context) Text(s string) { c.TextColored(c.Style.Text, s) }

func (c *Context) TextColored(col colors.Color, s string) {
	if c.cur == nil {
		return
	}
	tw, th := c.measure.Measure(s)
	x, y := c.place(tw, th)
	c.add(DrawCmd{Kind: CmdText, X: x, Y: y, Text: s, Color: col})
}

// Textf formats into the frame's scratch buffer, so the per-frame status
// lines do not allocate. Only the verbs of scratch.Buffer.Printf are
// understood.
func (c *Context) Textf(format string, args ...any) {
	if c.cur == nil {
		return
	}
	c.Text(c.text.Printf(format, args...))
}

// Separator draws a horizontal rule across the window's content width.
func (c *Context) Separator() {
	if c.cur == nil {
		return
	}
	c.cur.sameLine = false
	x, y := c.place(0, 1)
	i := c.add(DrawCmd{Kind: CmdRect, X: x, Y: y, H: 1, Color: c.Style.Separator})
	c.cur.separators = append(c.cur.separators, i)
}

// SameLine places the next item to the right of the previous one.
func (c *Context) SameLine() {
	if c.cur != nil {
		c.cur.sameLine = true
	}
}

// Spacing adds one ItemSpacing of vertical space.
func (c *Context) Spacing() {
	if c.cur == nil {
		return
	}
	c.cur.sameLine = false
	c.cur.cursorY += c.Style.ItemSpacing[1]
}

// Button reports whether it was clicked this frame: pressed and released
// while over the button.
func (c *Context) Button(label string) bool {
	if c.cur == nil {
		return false
	}
	st := &c.Style
	text := visibleLabel(label)
	tw, th := c.measure.Measure(text)
	bw, bh := tw+2*st.FramePadding[0], th+2*st.FramePadding[1]
	x, y := c.place(bw, bh)

	hovered, held, clicked := c.behavior(c.id(label), x, y, bw, bh)
	col := st.Button
	switch {
	case held:
		col = st.ButtonActive
	case hovered:
		col = st.ButtonHovered
	}
	c.add(DrawCmd{Kind: CmdRect, X: x, Y: y, W: bw, H: bh, Color: col})
	c.add(DrawCmd{Kind: CmdText, X: x + st.FramePadding[0], Y: y + st.FramePadding[1], Text: text, Color: st.Text})
	return clicked
}

// Checkbox toggles *v when clicked and reports whether it changed.
func (c *Context) Checkbox(label string, v *bool) bool {
	if c.cur == nil {
		return false
	}
	st := &c.Style
	text := visibleLabel(label)
	tw, _ := c.measure.Measure(text)
	box := c.lineH + 2*st.FramePadding[1]
	total := box
	if text != "" {
		total += st.ItemInnerSpacing[0] + tw
	}
	x, y := c.place(total, box)

	hovered, held, clicked := c.behavior(c.id(label), x, y, total, box)
	if clicked {
		*v = !*v
	}
	col := st.FrameBg
	switch {
	case held:
		col = st.FrameActive
	case hovered:
		col = st.FrameHovered
	}
	c.add(DrawCmd{Kind: CmdRect, X: x, Y: y, W: box, H: box, Color: col})
	if *v {
		pad := max(1, box/6)
		c.add(DrawCmd{Kind: CmdRect, X: x + pad, Y: y + pad, W: box - 2*pad, H: box - 2*pad, Color: st.CheckMark})
	}
	if text != "" {
		c.add(DrawCmd{Kind: CmdText, X: x + box + st.ItemInnerSpacing[0], Y: y + st.FramePadding[1], Text: text, Color: st.Text})
	}
	return clicked
}

// Image draws a sub-texture at w x h pixels.
func (c *Context) Image(img renderer2d.SubTexture2D, w, h float32, tint colors.Color) {
	if c.cur == nil {
		return
	}
	x, y := c.place(w, h)
	c.add(DrawCmd{Kind: CmdImage, X: x, Y: y, W: w, H: h, Image: img, Color: tint})
}

// ColorBox draws a square color swatch.
func (c *Context) ColorBox(col colors.Color, size float32) {
	if c.cur == nil {
		return
	}
	x, y := c.place(size, size)
	c.add(DrawCmd{Kind: CmdRect, X: x, Y: y, W: size, H: size, Color: col})
}

// ItemRect returns the rectangle of the last placed item.
func (c *Context) ItemRect() (x, y, w, h float32) {
	if c.cur == nil {
		return 0, 0, 0, 0
	}
	r := c.cur.lastItem
	return r[0], r[1], r[2], r[3]
}
