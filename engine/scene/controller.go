package scene

import "github.com/hubastard/hudlayer/engine/core"

// ViewportController keeps a camera sized to the framebuffer.
type ViewportController struct {
	Camera *ScreenCamera
}

func NewViewportController(cam *ScreenCamera) *ViewportController {
	return &ViewportController{Camera: cam}
}

// OnEvent resizes the camera on framebuffer changes. It never consumes the
// event.
func (vc *ViewportController) OnEvent(ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok {
		vc.Camera.SetViewportPixels(r.W, r.H)
	}
	return false
}
