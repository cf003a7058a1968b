// Package zorder keeps an overlay window stacked just behind whatever
// application currently owns the foreground, and above the desktop shell
// when nothing else does. The overlay is never activated.
//
// After placing the overlay behind a target, the target is raised to the
// top of the stack again. Whether that second step is required on every
// window manager is unverified; it is kept as-is.
package zorder

import (
	"time"
)

// Handle is an opaque native window handle (HWND on Windows). Zero is null.
type Handle uintptr

// Rect is a window bounding rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Window style bits consulted when classifying a foreground window.
const (
	StyleCaption uint32 = 0x00C00000 // WS_CAPTION
	StylePopup   uint32 = 0x80000000 // WS_POPUP
)

// Smallest foreground window worth tracking. Anything smaller is treated as
// a tooltip or similar transient surface.
const (
	MinTargetWidth  = 100
	MinTargetHeight = 50
)

// DefaultInterval bounds how often the foreground window is sampled.
const DefaultInterval = 200 * time.Millisecond

// DesktopClasses are the shell window classes that count as "the desktop".
var DesktopClasses = []string{
	"Progman",       // desktop
	"WorkerW",       // desktop worker surface
	"Shell_TrayWnd", // task tray
}

// Desktop is the slice of the OS windowing API the synchronizer needs.
// Every call is best-effort; implementations do not report failures.
type Desktop interface {
	Foreground() Handle
	ClassName(h Handle) string
	Visible(h Handle) bool
	Style(h Handle) uint32
	Rect(h Handle) (Rect, bool)

	// SetTopmost moves h into the topmost band without moving, sizing or
	// activating it.
	SetTopmost(h Handle)
	// PlaceBehind stacks h directly below after, same flags as SetTopmost.
	PlaceBehind(h, after Handle)
	// RaiseTop moves h to the top of its band, same flags as SetTopmost.
	RaiseTop(h Handle)
}

// Outcome reports what a single Sync call did.
type Outcome int

const (
	Throttled Outcome = iota // interval not elapsed, nothing queried
	Unchanged                // foreground same as last check
	Self                     // foreground is the overlay itself
	DesktopShell             // foreground is the desktop; overlay forced topmost
	Target                   // overlay placed behind the foreground window
	Ignored                  // foreground not worth tracking
)

func (o Outcome) String() string {
	switch o {
	case Throttled:
		return "throttled"
	case Unchanged:
		return "unchanged"
	case Self:
		return "self"
	case DesktopShell:
		return "desktop"
	case Target:
		return "behind target"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(s *Synchronizer) { s.interval = d }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Synchronizer) { s.now = now }
}

// Synchronizer holds the Z-order policy state. It is owned by the render
// loop and must not be shared between goroutines.
type Synchronizer struct {
	desktop  Desktop
	overlay  Handle
	interval time.Duration
	now      func() time.Time

	lastForeground Handle
	lastCheck      time.Time
	checked        bool
	lastOutcome    Outcome
}

// New returns a synchronizer managing overlay.
func New(d Desktop, overlay Handle, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		desktop:  d,
		overlay:  overlay,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LastForeground is the foreground handle seen at the last unthrottled check.
func (s *Synchronizer) LastForeground() Handle { return s.lastForeground }

// LastAction is the most recent outcome other than Throttled and Unchanged.
func (s *Synchronizer) LastAction() Outcome { return s.lastOutcome }

// Sync runs one rate-limited check. Call it once per rendered frame.
func (s *Synchronizer) Sync() Outcome {
	now := s.now()
	if s.checked && now.Sub(s.lastCheck) < s.interval {
		return Throttled
	}
	s.lastCheck = now
	s.checked = true

	fg := s.desktop.Foreground()
	if fg == s.lastForeground {
		return Unchanged
	}
	s.lastForeground = fg

	out := s.apply(fg)
	s.lastOutcome = out
	return out
}

func (s *Synchronizer) apply(fg Handle) Outcome {
	if fg == s.overlay {
		return Self
	}
	if s.IsDesktopWindow(fg) {
		s.desktop.SetTopmost(s.overlay)
		return DesktopShell
	}
	if s.IsValidTarget(fg) {
		s.desktop.PlaceBehind(s.overlay, fg)
		s.desktop.RaiseTop(fg)
		return Target
	}
	return Ignored
}

// IsDesktopWindow reports whether h is a desktop shell surface. A null
// handle counts as the desktop.
func (s *Synchronizer) IsDesktopWindow(h Handle) bool {
	if h == 0 {
		return true
	}
	class := s.desktop.ClassName(h)
	for _, c := range DesktopClasses {
		if class == c {
			return true
		}
	}
	return false
}

// IsValidTarget reports whether h is an application window the overlay
// should sit behind. If the rectangle cannot be read the size check is
// skipped.
func (s *Synchronizer) IsValidTarget(h Handle) bool {
	if h == 0 || h == s.overlay {
		return false
	}
	if s.IsDesktopWindow(h) {
		return false
	}
	if !s.desktop.Visible(h) {
		return false
	}
	style := s.desktop.Style(h)
	if style&StyleCaption == 0 && style&StylePopup == 0 {
		return false
	}
	if r, ok := s.desktop.Rect(h); ok {
		if r.Width() < MinTargetWidth || r.Height() < MinTargetHeight {
			return false
		}
	}
	return true
}
