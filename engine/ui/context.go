// Package ui is a small immediate-mode toolkit: every frame the application
// re-declares its windows and widgets, and the context turns them into a
// flat list of draw commands. Window positions, sizes and z-order persist
// between frames; nothing else does.
//
//	ctx.NewFrame(dt)
//	if ctx.Begin("Panel", &open, ui.WindowAutoResize) {
//		if ctx.Button("Quit") { ... }
//	}
//	ctx.End()
//	ctx.Render()
//	ctx.Draw(backend)
package ui

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
	"time"

	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
	"github.com/hubastard/hudlayer/engine/scratch"
)

// Renderer consumes draw commands. Coordinates are pixels, top-left origin.
type Renderer interface {
	DrawRect(x, y, w, h float32, c colors.Color)
	DrawText(x, y float32, s string, c colors.Color)
	DrawImage(x, y, w, h float32, img renderer2d.SubTexture2D, tint colors.Color)
}

// Measurer sizes text the way the Renderer will draw it.
type Measurer interface {
	Measure(s string) (w, h float32)
}

// Input is the mouse state the UI reacts to. Feed events through Handle;
// the press/release edges are consumed by NewFrame.
type Input struct {
	MouseX, MouseY float32
	MouseDown      bool
	MousePressed   bool // went down since the last frame
	MouseReleased  bool // went up since the last frame
}

func (in *Input) Handle(ev core.Event) {
	switch e := ev.(type) {
	case core.EventMouseMove:
		in.MouseX, in.MouseY = float32(e.X), float32(e.Y)
	case core.EventMouseButton:
		if e.Button != core.MouseLeft {
			return
		}
		if e.Down {
			in.MousePressed = true
		} else {
			in.MouseReleased = true
		}
		in.MouseDown = e.Down
	}
}

// ID identifies a window or widget across frames.
type ID uint32

type CmdKind int

const (
	CmdNone CmdKind = iota
	CmdRect
	CmdText
	CmdImage
)

// DrawCmd is one primitive of the frame's draw list.
type DrawCmd struct {
	Kind       CmdKind
	X, Y, W, H float32
	Color      colors.Color
	Text       string
	Image      renderer2d.SubTexture2D
}

type widgetState struct {
	hot    bool
	active bool
}

type Cond int

const (
	CondAlways Cond = iota
	CondFirstUseEver
)

type nextWindow struct {
	hasPos  bool
	pos     [2]float32
	posCond Cond

	hasSize  bool
	size     [2]float32
	sizeCond Cond
}

// Context owns all UI state. It is not safe for concurrent use.
type Context struct {
	Style Style
	Input Input

	measure Measurer
	lineH   float32
	in      Input // snapshot for the current frame

	windows map[ID]*window
	order   []*window // back to front
	cur     *window
	next    nextWindow
	hovered *window

	state    map[ID]widgetState
	active   ID
	dragging ID
	dragOff  [2]float32

	frame    uint64
	frames   core.FrameStats
	text     *scratch.Buffer
	drawData []DrawCmd

	// WantCaptureMouse reports whether the cursor is over (or dragging)
	// a UI window this frame.
	WantCaptureMouse bool

	demo demoState
}

func New(m Measurer) *Context {
	_, lh := m.Measure("")
	return &Context{
		Style:   DefaultStyle(),
		measure: m,
		lineH:   lh,
		windows: make(map[ID]*window, 8),
		state:   make(map[ID]widgetState, 64),
		text:    scratch.New(4 * 1024),
	}
}

// NewFrame starts a frame. dt is the time since the previous frame in
// seconds.
func (c *Context) NewFrame(dt float64) {
	c.frame++
	c.in = c.Input
	c.Input.MousePressed, c.Input.MouseReleased = false, false
	if dt > 0 {
		c.frames.Tick(time.Duration(dt * float64(time.Second)))
	}
	c.text.Reset()
	c.drawData = c.drawData[:0]
	c.cur = nil

	if !c.in.MouseDown && !c.in.MouseReleased {
		c.active = 0
	}
	if !c.in.MouseDown {
		c.dragging = 0
	}

	c.hovered = nil
	for i := len(c.order) - 1; i >= 0; i-- {
		w := c.order[i]
		if w.seen == c.frame-1 && w.contains(c.in.MouseX, c.in.MouseY) {
			c.hovered = w
			break
		}
	}
	if c.in.MousePressed && c.hovered != nil {
		c.bringToFront(c.hovered)
	}
	c.WantCaptureMouse = c.hovered != nil || c.dragging != 0
}

// Render finalizes the frame and returns its draw list, windows back to
// front. The list is valid until the next NewFrame.
func (c *Context) Render() []DrawCmd {
	c.drawData = c.drawData[:0]
	for _, w := range c.order {
		if w.seen != c.frame || w.hidden {
			continue
		}
		if c.isFront(w) {
			w.cmds[slotTitleBg].Color = c.Style.TitleBgActive
		}
		for _, cmd := range w.cmds {
			if cmd.Kind != CmdNone {
				c.drawData = append(c.drawData, cmd)
			}
		}
	}
	return c.drawData
}

// DrawData returns the list built by the last Render.
func (c *Context) DrawData() []DrawCmd { return c.drawData }

// Draw submits the last rendered draw list to r.
func (c *Context) Draw(r Renderer) {
	for i := range c.drawData {
		cmd := &c.drawData[i]
		switch cmd.Kind {
		case CmdRect:
			r.DrawRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case CmdText:
			r.DrawText(cmd.X, cmd.Y, cmd.Text, cmd.Color)
		case CmdImage:
			r.DrawImage(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Image, cmd.Color)
		}
	}
}

// Framerate is the average frames per second over the last 60 frames.
func (c *Context) Framerate() float64 { return c.frames.Framerate() }

// Mouse returns the cursor position seen by the current frame.
func (c *Context) Mouse() (x, y float32) { return c.in.MouseX, c.in.MouseY }

// ----- ids -----

func hashStr(seed ID, s string) ID {
	h := fnv.New32a()
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(seed))
	h.Write(b[:])
	h.Write([]byte(s))
	return ID(h.Sum32())
}

func (c *Context) id(label string) ID {
	var seed ID
	if c.cur != nil {
		seed = c.cur.id
	}
	return hashStr(seed, label)
}

// visibleLabel strips an "##id" suffix used to disambiguate equal labels.
func visibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// ----- interaction -----

func pointIn(px, py, x, y, w, h float32) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// behavior is the shared press/release logic: a click needs the press and
// the release to both land on the widget.
func (c *Context) behavior(id ID, x, y, w, h float32) (hovered, held, clicked bool) {
	hovered = c.cur != nil && c.cur == c.hovered && c.dragging == 0 &&
		(c.active == 0 || c.active == id) &&
		pointIn(c.in.MouseX, c.in.MouseY, x, y, w, h)

	if hovered && c.in.MousePressed {
		c.active = id
	}
	if c.active == id {
		held = c.in.MouseDown
		if c.in.MouseReleased {
			clicked = hovered
			c.active = 0
			held = false
		}
	}
	c.state[id] = widgetState{hot: hovered, active: held}
	return hovered, held, clicked
}

func (c *Context) bringToFront(w *window) {
	for i, o := range c.order {
		if o == w {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = w
			return
		}
	}
}

func (c *Context) isFront(w *window) bool {
	for i := len(c.order) - 1; i >= 0; i-- {
		if c.order[i].seen == c.frame && !c.order[i].hidden {
			return c.order[i] == w
		}
	}
	return false
}
