package ui

import (
	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
	"github.com/hubastard/hudlayer/engine/text"
)

// Backend draws UI commands with the batched 2D renderer and a font
// atlas. It must be used between R2D.BeginScene and R2D.EndScene with a
// top-left screen camera.
type Backend struct {
	R2D  *renderer2d.Renderer2D
	Font *text.Font
}

func (b Backend) Measure(s string) (w, h float32) { return text.MeasureText(b.Font, s) }

func (b Backend) DrawRect(x, y, w, h float32, c colors.Color) { b.R2D.DrawRect(x, y, w, h, c) }

func (b Backend) DrawText(x, y float32, s string, c colors.Color) {
	text.DrawText(b.R2D, b.Font, x, y, s, c)
}

func (b Backend) DrawImage(x, y, w, h float32, img renderer2d.SubTexture2D, tint colors.Color) {
	b.R2D.DrawImage(x, y, w, h, img, tint)
}
