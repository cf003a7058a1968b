package main

import (
	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/zorder"
)

const vkF1 = 0x70

// desktopAPI is what the overlay needs from the window manager beyond the
// Z-order policy itself.
type desktopAPI interface {
	zorder.Desktop
	WindowText(h zorder.Handle) string
	BringToFront(h zorder.Handle)
	KeyDown(vk int) bool
}

// zorderLayer runs the Z-order policy once per frame while enabled and
// polls the global F1 hotkey.
type zorderLayer struct {
	desk    desktopAPI
	sync    *zorder.Synchronizer
	overlay zorder.Handle
	opts    []zorder.Option

	Enabled bool
	acted   bool
}

func newZOrderLayer(d desktopAPI, opts ...zorder.Option) *zorderLayer {
	return &zorderLayer{desk: d, opts: opts, Enabled: true}
}

func (l *zorderLayer) OnAttach(e *core.Engine) {
	l.overlay = zorder.Handle(e.Window.Handle())
	l.sync = zorder.New(l.desk, l.overlay, l.opts...)
}

func (l *zorderLayer) OnDetach(*core.Engine) {}

func (l *zorderLayer) OnUpdate(*core.Engine, float64) {
	if l.Enabled {
		switch out := l.sync.Sync(); out {
		case zorder.Throttled, zorder.Unchanged:
		default:
			l.acted = true
			core.Logger().Debug("z-order", "action", out, "foreground", uint64(l.sync.LastForeground()))
		}
	}
	if l.desk.KeyDown(vkF1) {
		l.BringToFront()
	}
}

func (l *zorderLayer) OnRender(*core.Engine)                 {}
func (l *zorderLayer) OnEvent(*core.Engine, core.Event) bool { return false }

// BringToFront forces the overlay topmost and gives it focus.
func (l *zorderLayer) BringToFront() { l.desk.BringToFront(l.overlay) }

// ForegroundTitle is the title of the focused window, "Unknown" if it has
// none.
func (l *zorderLayer) ForegroundTitle() string {
	if t := l.desk.WindowText(l.desk.Foreground()); t != "" {
		return t
	}
	return "Unknown"
}

// LastAction describes the most recent repositioning, "none" before the
// first one.
func (l *zorderLayer) LastAction() string {
	if !l.acted {
		return "none"
	}
	return l.sync.LastAction().String()
}
