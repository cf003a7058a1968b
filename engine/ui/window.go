package ui

type WindowFlags uint32

const (
	// WindowAutoResize fits the window to its content every frame.
	WindowAutoResize WindowFlags = 1 << iota
)

// Reserved command slots at the head of every window's list; End fills
// them once the final window size is known.
const (
	slotBg = iota
	slotTitleBg
	slotTitleText
	slotCloseBg
	slotCloseText
	numSlots
)

type window struct {
	id    ID
	title string
	flags WindowFlags

	x, y, w, h float32

	seen    uint64
	hidden  bool
	hasOpen bool
	autoFit bool

	// layout
	lineY, lineH float32
	cursorY      float32
	prevX2       float32
	sameLine     bool
	maxX         float32 // relative to x
	lastItem     [4]float32
	items        int

	cmds       []DrawCmd
	separators []int
}

func (w *window) contains(px, py float32) bool {
	return !w.hidden && pointIn(px, py, w.x, w.y, w.w, w.h)
}

// SetNextWindowPos positions the next Begin'd window. With
// CondFirstUseEver it only applies the first time that window appears.
func (c *Context) SetNextWindowPos(x, y float32, cond Cond) {
	c.next.hasPos = true
	c.next.pos = [2]float32{x, y}
	c.next.posCond = cond
}

func (c *Context) SetNextWindowSize(w, h float32, cond Cond) {
	c.next.hasSize = true
	c.next.size = [2]float32{w, h}
	c.next.sizeCond = cond
}

func (c *Context) titleHeight() float32 { return c.lineH + 2*c.Style.FramePadding[1] }
func (c *Context) closeSize() float32   { return c.lineH }

func (c *Context) closeRect(w *window) (x, y, s float32) {
	s = c.closeSize()
	return w.x + w.w - c.Style.FramePadding[0] - s, w.y + c.Style.FramePadding[1], s
}

// Begin starts a window. Windows are identified by title; use "##" to give
// two windows the same visible title. If open is non-nil the title bar
// gets a close button that sets *open to false. Begin returns false when
// the window is closed; End must be called either way.
func (c *Context) Begin(title string, open *bool, flags WindowFlags) bool {
	id := hashStr(0, title)
	w, ok := c.windows[id]
	if !ok {
		w = &window{id: id, title: visibleLabel(title)}
		c.windows[id] = w
		c.order = append(c.order, w)
	}
	c.applyNext(w, !ok)

	w.flags = flags
	w.seen = c.frame
	w.hasOpen = open != nil
	w.cmds = w.cmds[:0]
	w.separators = w.separators[:0]
	c.cur = w

	if open != nil && !*open {
		w.hidden = true
		return false
	}
	w.hidden = false

	if open != nil {
		cx, cy, s := c.closeRect(w)
		if _, _, clicked := c.behavior(c.id("#CLOSE"), cx, cy, s, s); clicked {
			*open = false
			w.hidden = true
			return false
		}
	}

	c.updateDrag(w)

	for i := 0; i < numSlots; i++ {
		w.cmds = append(w.cmds, DrawCmd{})
	}

	p := c.Style.WindowPadding
	w.cursorY = w.y + c.titleHeight() + p[1]
	w.lineY, w.lineH = w.cursorY, 0
	w.prevX2 = w.x + p[0]
	w.sameLine = false
	w.maxX = p[0]
	w.items = 0
	w.lastItem = [4]float32{}
	return true
}

func (c *Context) applyNext(w *window, firstUse bool) {
	n := c.next
	c.next = nextWindow{}
	if n.hasPos && (n.posCond == CondAlways || firstUse) {
		w.x, w.y = n.pos[0], n.pos[1]
	}
	if n.hasSize && (n.sizeCond == CondAlways || firstUse) {
		w.w, w.h = n.size[0], n.size[1]
	}
	w.autoFit = firstUse && !n.hasSize
}

func (c *Context) updateDrag(w *window) {
	if c.dragging == w.id {
		w.x = c.in.MouseX - c.dragOff[0]
		w.y = c.in.MouseY - c.dragOff[1]
		return
	}
	if !c.in.MousePressed || c.hovered != w || c.active != 0 || c.dragging != 0 {
		return
	}
	mx, my := c.in.MouseX, c.in.MouseY
	if !pointIn(mx, my, w.x, w.y, w.w, c.titleHeight()) {
		return
	}
	if w.hasOpen {
		cx, cy, s := c.closeRect(w)
		if pointIn(mx, my, cx, cy, s, s) {
			return
		}
	}
	c.dragging = w.id
	c.dragOff = [2]float32{mx - w.x, my - w.y}
	c.WantCaptureMouse = true
}

// End closes the window opened by the matching Begin.
func (c *Context) End() {
	w := c.cur
	c.cur = nil
	if w == nil || w.hidden {
		return
	}
	st := &c.Style
	titleH := c.titleHeight()
	tw, _ := c.measure.Measure(w.title)
	minW := st.FramePadding[0]*2 + tw
	if w.hasOpen {
		minW += st.ItemInnerSpacing[0] + c.closeSize()
	}

	if w.flags&WindowAutoResize != 0 || w.autoFit {
		bottom := titleH
		if w.items > 0 {
			bottom = w.cursorY - st.ItemSpacing[1] - w.y
		}
		w.w = max(w.maxX+st.WindowPadding[0], minW)
		w.h = bottom + st.WindowPadding[1]
		w.autoFit = false
	} else {
		w.w = max(w.w, minW)
		w.h = max(w.h, titleH)
	}

	sepW := w.w - 2*st.WindowPadding[0]
	for _, i := range w.separators {
		w.cmds[i].W = sepW
	}

	w.cmds[slotBg] = DrawCmd{Kind: CmdRect, X: w.x, Y: w.y, W: w.w, H: w.h, Color: st.WindowBg}
	w.cmds[slotTitleBg] = DrawCmd{Kind: CmdRect, X: w.x, Y: w.y, W: w.w, H: titleH, Color: st.TitleBg}
	w.cmds[slotTitleText] = DrawCmd{
		Kind: CmdText, X: w.x + st.FramePadding[0], Y: w.y + st.FramePadding[1],
		Text: w.title, Color: st.Text,
	}
	if !w.hasOpen {
		return
	}
	cx, cy, s := c.closeRect(w)
	switch ws := c.state[hashStr(w.id, "#CLOSE")]; {
	case ws.active:
		w.cmds[slotCloseBg] = DrawCmd{Kind: CmdRect, X: cx, Y: cy, W: s, H: s, Color: st.ButtonActive}
	case ws.hot:
		w.cmds[slotCloseBg] = DrawCmd{Kind: CmdRect, X: cx, Y: cy, W: s, H: s, Color: st.ButtonHovered}
	}
	xw, _ := c.measure.Measure("x")
	w.cmds[slotCloseText] = DrawCmd{Kind: CmdText, X: cx + (s-xw)/2, Y: cy, Text: "x", Color: st.Text}
}

// place lays out the next item of size iw x ih and returns its top-left.
func (c *Context) place(iw, ih float32) (x, y float32) {
	w := c.cur
	st := &c.Style
	if w.sameLine && w.items > 0 {
		x = w.prevX2 + st.ItemSpacing[0]
		y = w.lineY
		w.lineH = max(w.lineH, ih)
	} else {
		x = w.x + st.WindowPadding[0]
		y = w.cursorY
		w.lineY, w.lineH = y, ih
	}
	w.sameLine = false
	w.prevX2 = x + iw
	w.maxX = max(w.maxX, x+iw-w.x)
	w.cursorY = w.lineY + w.lineH + st.ItemSpacing[1]
	w.lastItem = [4]float32{x, y, iw, ih}
	w.items++
	return x, y
}

func (c *Context) add(cmd DrawCmd) int {
	c.cur.cmds = append(c.cur.cmds, cmd)
	return len(c.cur.cmds) - 1
}
