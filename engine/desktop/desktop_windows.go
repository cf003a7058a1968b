//go:build windows

// Package desktop binds the parts of user32 the overlay needs: foreground
// window inspection, stacking, layered styling and window-procedure
// subclassing.
package desktop

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/hubastard/hudlayer/engine/zorder"
)

// GetWindowLong indices. Not constants: uintptr(idx) has to sign-extend.
var (
	gwlStyle    int32 = -16
	gwlExStyle  int32 = -20
	gwlpWndProc int32 = -4
)

const (
	wsExTopmost   = 0x00000008
	wsExAppWindow = 0x00040000
	wsExLayered   = 0x00080000

	lwaColorKey = 0x1

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010

	hwndTop = 0
)

// HWND_TOPMOST is (HWND)-1.
var hwndTopmost = ^uintptr(0)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetForegroundWindow        = user32.NewProc("GetForegroundWindow")
	procSetForegroundWindow        = user32.NewProc("SetForegroundWindow")
	procGetClassNameW              = user32.NewProc("GetClassNameW")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	procIsWindowVisible            = user32.NewProc("IsWindowVisible")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procGetAsyncKeyState           = user32.NewProc("GetAsyncKeyState")
	procCallWindowProcW            = user32.NewProc("CallWindowProcW")
	procPostQuitMessage            = user32.NewProc("PostQuitMessage")
)

// Desktop talks to the live window manager. The zero value is ready to use.
// All calls are best-effort: failures are swallowed.
type Desktop struct{}

var _ zorder.Desktop = Desktop{}

func (Desktop) Foreground() zorder.Handle {
	h, _, _ := procGetForegroundWindow.Call()
	return zorder.Handle(h)
}

func (Desktop) ClassName(h zorder.Handle) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// WindowText returns the title of h, or "" if it has none.
func (Desktop) WindowText(h zorder.Handle) string {
	var buf [256]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func (Desktop) Visible(h zorder.Handle) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(h))
	return r != 0
}

func (Desktop) Style(h zorder.Handle) uint32 {
	r, _, _ := procGetWindowLongW.Call(uintptr(h), uintptr(gwlStyle))
	return uint32(r)
}

func (Desktop) Rect(h zorder.Handle) (zorder.Rect, bool) {
	var r windows.Rect
	ok, _, _ := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return zorder.Rect{}, false
	}
	return zorder.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, true
}

func setWindowPos(h zorder.Handle, after uintptr) {
	procSetWindowPos.Call(uintptr(h), after, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func (Desktop) SetTopmost(h zorder.Handle) { setWindowPos(h, hwndTopmost) }

func (Desktop) PlaceBehind(h, after zorder.Handle) { setWindowPos(h, uintptr(after)) }

func (Desktop) RaiseTop(h zorder.Handle) { setWindowPos(h, hwndTop) }

// BringToFront makes h topmost and gives it the foreground.
func (d Desktop) BringToFront(h zorder.Handle) {
	d.SetTopmost(h)
	procSetForegroundWindow.Call(uintptr(h))
}

// KeyDown reports whether the virtual key vk is currently held.
func (Desktop) KeyDown(vk int) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return r&0x8000 != 0
}

// ApplyOverlayStyle turns h into a layered, topmost, taskbar-visible window
// whose colorKey pixels (0x00BBGGRR) are fully transparent.
func (Desktop) ApplyOverlayStyle(h zorder.Handle, colorKey uint32) {
	ex, _, _ := procGetWindowLongPtr.Call(uintptr(h), uintptr(gwlExStyle))
	ex |= wsExLayered | wsExTopmost | wsExAppWindow
	procSetWindowLongPtr.Call(uintptr(h), uintptr(gwlExStyle), ex)
	procSetLayeredWindowAttributes.Call(uintptr(h), uintptr(colorKey), 0, lwaColorKey)
}

// WndProc is a native window procedure.
type WndProc func(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr

// Subclass installs proc as the window procedure of h and returns the
// previous one. The callback is never released; call it once per window.
func (Desktop) Subclass(h zorder.Handle, proc WndProc) uintptr {
	cb := windows.NewCallback(func(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
		return proc(hwnd, msg, wParam, lParam)
	})
	prev, _, _ := procSetWindowLongPtr.Call(uintptr(h), uintptr(gwlpWndProc), cb)
	return prev
}

// CallWindowProc forwards a message to a previously installed procedure.
func (Desktop) CallWindowProc(prev, hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procCallWindowProcW.Call(prev, hwnd, uintptr(msg), wParam, lParam)
	return r
}

// PostQuitMessage posts WM_QUIT to the calling thread's queue.
func (Desktop) PostQuitMessage(code int) {
	procPostQuitMessage.Call(uintptr(code))
}
