// Command hudlayer runs a transparent, always-available overlay with an
// immediate-mode control panel that keeps itself stacked just behind
// whatever window has focus.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/hudlayer/engine/core"
	glbackend "github.com/hubastard/hudlayer/engine/gfx/gl"
	"github.com/hubastard/hudlayer/engine/platform"
)

// newLogger writes Info and above; the overlay has no runtime switches.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func main() {
	log := newLogger(os.Stderr)
	core.SetLogger(log)

	cfg := core.DefaultConfig()
	cfg.Title = "Transparent Overlay"
	cfg.ClearColor = [4]float32{0, 0, 0, 0}
	cfg.ColorKey = [3]uint8{0, 0, 0}

	var software bool
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		software = w.Software()
		return w, nil
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg, glbackend.WithSoftware(software))
	}

	if err := core.Run(NewApp(), cfg, newWindow, newRenderer); err != nil {
		log.Error("hudlayer failed", "err", err)
		os.Exit(1)
	}
}
