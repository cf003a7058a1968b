package core

import (
	"fmt"
	"runtime"
	"time"
)

// Replaced in tests.
var (
	sleep = time.Sleep
	now   = time.Now
)

// Run wires the platform window + renderer and executes the main loop until
// the window is asked to close. Only window and renderer creation can fail.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if cfg.OccludedSleep <= 0 {
		cfg.OccludedSleep = 10 * time.Millisecond
	}
	log := Logger()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	// window owns the context; renderer shuts down first (defers run LIFO)
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	info := rend.Info()
	log.Info("renderer ready",
		"vendor", info.Vendor, "renderer", info.Renderer, "version", info.Version, "software", info.Software)

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := &Engine{
		Window:   win,
		Renderer: rend,
		Input:    NewInput(),
		Frames:   &FrameStats{},
		Config:   cfg,
		start:    now(),
	}
	dispatch := func(ev Event) {
		eng.Input.Handle(ev)
		app.OnEvent(eng, ev)
	}
	win.SetEventCallback(dispatch)

	app.OnStart(eng)

	var (
		clear    = cfg.ClearColor
		prev     = now()
		occluded bool
	)
	for !win.ShouldClose() {
		win.PollEvents()

		// Nothing can be shown while minimized or hidden; idle instead of
		// spinning on Present.
		if occluded {
			if win.Occluded() {
				sleep(cfg.OccludedSleep)
				continue
			}
			occluded = false
			prev = now()
		}

		if fw, fh, ok := win.TakeResize(); ok {
			log.Debug("resize", "w", fw, "h", fh)
			rend.Resize(fw, fh)
			dispatch(EventResize{W: fw, H: fh})
		}

		t := now()
		dt := t.Sub(prev)
		prev = t
		eng.Frames.Tick(dt)

		app.OnUpdate(eng, dt.Seconds())

		rend.Clear(clear[0], clear[1], clear[2], clear[3])
		app.OnRender(eng)

		occluded = win.Present()
	}

	app.OnShutdown(eng)
	log.Info("engine exit", "frames", eng.Frames.Frames(), "uptime", eng.Uptime())
	return nil
}
