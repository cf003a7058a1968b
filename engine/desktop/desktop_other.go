//go:build !windows

// Package desktop binds the parts of the native window manager the overlay
// needs. Outside Windows there is nothing to bind: every query reports an
// empty desktop and every command is ignored.
package desktop

import "github.com/hubastard/hudlayer/engine/zorder"

type Desktop struct{}

var _ zorder.Desktop = Desktop{}

func (Desktop) Foreground() zorder.Handle                { return 0 }
func (Desktop) ClassName(zorder.Handle) string           { return "" }
func (Desktop) WindowText(zorder.Handle) string          { return "" }
func (Desktop) Visible(zorder.Handle) bool               { return false }
func (Desktop) Style(zorder.Handle) uint32               { return 0 }
func (Desktop) Rect(zorder.Handle) (zorder.Rect, bool)   { return zorder.Rect{}, false }
func (Desktop) SetTopmost(zorder.Handle)                 {}
func (Desktop) PlaceBehind(zorder.Handle, zorder.Handle) {}
func (Desktop) RaiseTop(zorder.Handle)                   {}
func (Desktop) BringToFront(zorder.Handle)               {}
func (Desktop) KeyDown(int) bool                         { return false }
