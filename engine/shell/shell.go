// Package shell decides how the overlay window reacts to native window
// messages. Handle is a pure function so the policy can be exercised
// without a live window; State holds the deltas it produces until the
// render loop consumes them.
package shell

// Win32 message identifiers and parameters understood by Handle.
const (
	WMDestroy    uint32 = 0x0002
	WMSize       uint32 = 0x0005
	WMClose      uint32 = 0x0010
	WMSysCommand uint32 = 0x0112

	SizeRestored  uintptr = 0
	SizeMinimized uintptr = 1

	SCKeyMenu uintptr = 0xF100
)

// Message is one native window message.
type Message struct {
	ID     uint32
	WParam uintptr
	LParam uintptr
}

// SizeMessage builds the WM_SIZE message a window of w×h would receive.
func SizeMessage(w, h int, minimized bool) Message {
	kind := SizeRestored
	if minimized {
		kind = SizeMinimized
	}
	return Message{ID: WMSize, WParam: kind, LParam: uintptr(uint16(w)) | uintptr(uint16(h))<<16}
}

// Size is a client area size in pixels.
type Size struct {
	Width, Height uint32
}

// Result is what Handle decided. Unhandled messages must be passed on to the
// UI hook and then to default OS processing.
type Result struct {
	Handled bool
	Ret     uintptr

	Resize *Size // new client size to apply on the next frame
	Quit   bool  // post a quit signal
}

// Hook gives the UI layer first look at a message. It returns the message
// result and whether the message was consumed.
type Hook func(Message) (ret uintptr, handled bool)

// Handle applies the overlay's message policy.
func Handle(msg Message) Result {
	switch msg.ID {
	case WMSize:
		if msg.WParam == SizeMinimized {
			return Result{Handled: true}
		}
		w := uint32(msg.LParam & 0xFFFF)
		h := uint32((msg.LParam >> 16) & 0xFFFF)
		if w == 0 || h == 0 {
			return Result{Handled: true}
		}
		return Result{Handled: true, Resize: &Size{Width: w, Height: h}}
	case WMSysCommand:
		// Alt/F10 would otherwise open the system menu and steal focus.
		if msg.WParam&0xFFF0 == SCKeyMenu {
			return Result{Handled: true}
		}
	case WMDestroy:
		return Result{Handled: true, Quit: true}
	}
	return Result{}
}

// Dispatch runs Handle and, for messages it leaves alone, offers them to
// hook. The returned Result is Handled if either consumed the message.
func Dispatch(msg Message, hook Hook) Result {
	res := Handle(msg)
	if res.Handled || hook == nil {
		return res
	}
	res.Ret, res.Handled = hook(msg)
	return res
}

// State accumulates the effects of handled messages.
type State struct {
	pending    Size
	hasPending bool
	quit       bool
}

// Apply records the deltas carried by r.
func (s *State) Apply(r Result) {
	if r.Resize != nil {
		s.pending = *r.Resize
		s.hasPending = true
	}
	if r.Quit {
		s.quit = true
	}
}

// TakeResize returns the latest pending size once, then clears it.
func (s *State) TakeResize() (w, h int, ok bool) {
	if !s.hasPending {
		return 0, 0, false
	}
	s.hasPending = false
	return int(s.pending.Width), int(s.pending.Height), true
}

// QuitRequested reports whether a quit signal was posted.
func (s *State) QuitRequested() bool { return s.quit }
