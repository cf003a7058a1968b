//go:build !windows

package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/hudlayer/engine/core"
	"github.com/hubastard/hudlayer/engine/shell"
)

type nativeState struct {
	minimized bool
}

// installNative has no native procedure to subclass, so it synthesizes the
// size messages a Win32 overlay would receive from GLFW callbacks. Color
// keying is left to the compositor's transparent framebuffer.
func (g *GLFWWindow) installNative(core.Config) {
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.apply(shell.Handle(shell.SizeMessage(w, h, g.native.minimized)))
	})
	g.w.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		g.native.minimized = iconified
		w, h := g.w.GetFramebufferSize()
		g.apply(shell.Handle(shell.SizeMessage(w, h, iconified)))
	})
}

func (g *GLFWWindow) Handle() uintptr { return 0 }
