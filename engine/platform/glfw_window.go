package platform

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/hudlayer/engine/assets"
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/shell"
)

// GLFWWindow implements core.Window as a borderless, transparent overlay
// covering the primary screen.
type GLFWWindow struct {
	w        *glfw.Window
	onEv     func(core.Event)
	shell    shell.State
	software bool
	native   nativeState
}

var _ core.Window = (*GLFWWindow)(nil)

// NewGLFWWindow creates the overlay and makes its GL context current. It
// must be called on the main thread. When the native context API or the
// requested GL version is unavailable it retries with OSMesa.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		if m := glfw.GetPrimaryMonitor(); m != nil {
			if mode := m.GetVideoMode(); mode != nil {
				w, h = mode.Width, mode.Height
			}
		}
	}
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}

	log := core.Logger()
	win, err := createWindow(w, h, cfg.Title, glfw.NativeContextAPI)
	software := false
	if unavailable(err) {
		log.Warn("native GL context unavailable, falling back to OSMesa", "err", err)
		win, err = createWindow(w, h, cfg.Title, glfw.OSMesaContextAPI)
		software = true
	}
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	win.SetPos(0, 0)

	if icon, err := assets.WindowIcon(); err == nil {
		win.SetIcon([]image.Image{icon})
	} else {
		log.Warn("window icon", "err", err)
	}

	gw := &GLFWWindow{w: win, software: software}
	gw.installCallbacks()
	gw.installNative(cfg)
	win.Show()

	log.Info("overlay window created", "width", w, "height", h, "software", software)
	return gw, nil
}

func createWindow(w, h int, title string, api int) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextCreationAPI, api)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	return glfw.CreateWindow(w, h, title, nil, nil)
}

// unavailable reports whether err means the context API or GL version
// cannot be provided, the cases worth a software retry.
func unavailable(err error) bool {
	var gerr *glfw.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == glfw.APIUnavailable || gerr.Code == glfw.VersionUnavailable
}

func (g *GLFWWindow) installCallbacks() {
	win := g.w
	win.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		g.emit(core.EventMouseMove{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		g.emit(core.EventMouseButton{Button: btn, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		k := translateKey(key)
		if k == core.KeyUnknown {
			return
		}
		g.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.EventScroll{DX: xoff, DY: yoff})
	})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// apply records the effects of one native (or synthesized) message.
func (g *GLFWWindow) apply(res shell.Result) {
	g.shell.Apply(res)
	if res.Quit {
		g.w.SetShouldClose(true)
	}
}

// Present swaps buffers unless the window is minimized or hidden, in which
// case it reports occlusion.
func (g *GLFWWindow) Present() bool {
	if g.Occluded() {
		return true
	}
	g.w.SwapBuffers()
	return false
}

func (g *GLFWWindow) Occluded() bool {
	return g.w.GetAttrib(glfw.Iconified) == glfw.True || g.w.GetAttrib(glfw.Visible) == glfw.False
}

// Software reports whether the context came from the OSMesa fallback.
func (g *GLFWWindow) Software() bool { return g.software }

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }
func (g *GLFWWindow) TakeResize() (int, int, bool)         { return g.shell.TakeResize() }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyF1:
		return core.KeyF1
	default:
		return core.KeyUnknown
	}
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	}
	return 0, false
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
