package text

import (
	"math"

	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/gfx/renderer2d"
)

// QuadSink receives one top-left positioned atlas image per visible glyph.
// *renderer2d.Renderer2D satisfies it.
type QuadSink interface {
	DrawImage(x, y, w, h float32, img renderer2d.SubTexture2D, tint colors.Color)
}

// layout walks s, calling fn with each glyph's top-left pen position
// relative to the text's top-left corner. Missing runes advance like a
// space. It returns the widest line and the line count.
func layout(font *Font, s string, fn func(g Glyph, x, y float32)) (width float32, lines int) {
	var penX float32
	baseY := font.Ascent
	lineH := LineHeight(font)
	prev := rune(-1)
	lines = 1

	for _, r := range s {
		if r == '\n' {
			width = max(width, penX)
			penX = 0
			baseY += lineH
			lines++
			prev = -1
			continue
		}

		g, ok := font.Glyphs[r]
		if !ok {
			if sp, ok2 := font.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 {
			penX += font.Kerning[[2]rune{prev, r}]
		}
		if fn != nil && g.W > 0 && g.H > 0 {
			fn(g, penX+g.BearingX, baseY-g.BearingY)
		}
		penX += g.Advance
		prev = r
	}
	return max(width, penX), lines
}

// DrawText draws s with its top-left corner at (x,y). Positive Y goes
// downward (matching the 2D projection). The origin is snapped to whole
// pixels so the nearest-filtered atlas stays crisp.
func DrawText(dst QuadSink, font *Font, x, y float32, s string, color colors.Color) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	layout(font, s, func(g Glyph, gx, gy float32) {
		img := renderer2d.SubTexture2D{Texture: font.Texture, U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1}
		dst.DrawImage(x+gx, y+gy, float32(g.W), float32(g.H), img, color)
	})
}

// MeasureText returns the bounding size of s laid out by DrawText.
func MeasureText(font *Font, s string) (width, height float32) {
	w, lines := layout(font, s, nil)
	return w, float32(lines) * LineHeight(font)
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(font *Font) float32    { return font.Ascent }
func BaselineToBottom(font *Font) float32 { return -font.Descent }
func LineHeight(font *Font) float32       { return font.Ascent - font.Descent + font.LineGap }
