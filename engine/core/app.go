package core

import "time"

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/renderer init
	OnUpdate(e *Engine, dt float64) // called once per presented frame, dt in seconds
	OnRender(e *Engine)             // submit draw commands; the target is already cleared
	OnEvent(e *Engine, ev Event)    // input/window events
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    *Input
	Frames   *FrameStats
	Config   Config
	start    time.Time
}

func (e *Engine) Uptime() time.Duration { return now().Sub(e.start) }

// Quit asks the loop to stop after the current frame.
func (e *Engine) Quit() { e.Window.RequestClose() }

// Window abstraction.
type Window interface {
	PollEvents()
	// Present swaps buffers and reports whether the window is occluded
	// (minimized or hidden) and nothing was actually shown.
	Present() (occluded bool)
	// Occluded tests presentation without swapping.
	Occluded() bool
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	// TakeResize returns a pending client resize once.
	TakeResize() (w, h int, ok bool)
	// Handle is the native window handle, 0 if there is none.
	Handle() uintptr
	Destroy()
}

// RendererInfo identifies the GPU context in use.
type RendererInfo struct {
	Vendor   string
	Renderer string
	Version  string
	Software bool
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, verts []float32, inds []uint32) error
	Draw(cmd DrawCmd)

	Info() RendererInfo
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ DX, DY float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyF1
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Config for the engine run.
type Config struct {
	Title  string
	Width  int // 0: primary screen width
	Height int // 0: primary screen height
	VSync  bool

	ClearColor [4]float32 // RGBA
	// ColorKey is the RGB color the compositor makes fully transparent.
	ColorKey [3]uint8
	// OccludedSleep is how long to idle while the window cannot be shown.
	OccludedSleep time.Duration
}

// DefaultConfig is a full-screen overlay cleared to transparent black with
// black as the color key.
func DefaultConfig() Config {
	return Config{
		Title:         "Overlay",
		VSync:         true,
		OccludedSleep: 10 * time.Millisecond,
	}
}
