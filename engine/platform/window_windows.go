//go:build windows

package platform

import (
	"unsafe"

	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/desktop"
	"github.com/hubastard/hudlayer/engine/shell"
	"github.com/hubastard/hudlayer/engine/zorder"
)

type nativeState struct {
	hwnd    uintptr
	prevWnd uintptr
}

func colorRef(c [3]uint8) uint32 {
	return uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16
}

// installNative styles the window as a layered, color-keyed, taskbar-visible
// overlay and routes its messages through shell.Dispatch. GLFW's own
// procedure is the hook, so input keeps reaching the GLFW callbacks.
func (g *GLFWWindow) installNative(cfg core.Config) {
	var d desktop.Desktop
	hwnd := uintptr(unsafe.Pointer(g.w.GetWin32Window()))
	g.native.hwnd = hwnd
	d.ApplyOverlayStyle(zorder.Handle(hwnd), colorRef(cfg.ColorKey))

	g.native.prevWnd = d.Subclass(zorder.Handle(hwnd), func(h uintptr, msg uint32, wParam, lParam uintptr) uintptr {
		res := shell.Dispatch(shell.Message{ID: msg, WParam: wParam, LParam: lParam}, func(m shell.Message) (uintptr, bool) {
			return d.CallWindowProc(g.native.prevWnd, h, m.ID, m.WParam, m.LParam), true
		})
		g.apply(res)
		if res.Quit {
			d.PostQuitMessage(0)
		}
		return res.Ret
	})
}

func (g *GLFWWindow) Handle() uintptr { return g.native.hwnd }
