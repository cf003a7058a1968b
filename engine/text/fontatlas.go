package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/hudlayer/engine/assets"
	"github.com/hubastard/hudlayer/engine/core"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in atlas, top-left origin
	U1, V1   float32
}

// Font is a rasterized glyph atlas for one face at one pixel size. The
// atlas lives on the CPU until Upload creates the GPU texture.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32 // Descent is negative
	Glyphs                   map[rune]Glyph
	Kerning                  map[[2]rune]float32

	Atlas          *image.Alpha
	AtlasW, AtlasH int
	Texture        core.Texture
}

const (
	cellGap      = 2
	minAtlasSide = 128
	maxAtlasSide = 4096
)

// HUD labels only need printable ASCII and Latin-1.
var charRanges = [][2]rune{{0x20, 0x7e}, {0xa0, 0xff}}

// Default builds the embedded Go Regular face at sizePx.
func Default(sizePx float32) (*Font, error) {
	return NewFont(goregular.TTF, sizePx)
}

// NewFont parses a TrueType/OpenType font and rasterizes a white-on-clear
// coverage atlas.
func NewFont(ttf []byte, sizePx float32) (*Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	f := &Font{
		SizePx:  sizePx,
		Ascent:  float32(metrics.Ascent.Round()),
		Descent: float32(-metrics.Descent.Round()),
		Glyphs:  make(map[rune]Glyph),
		Kerning: make(map[[2]rune]float32),
	}
	f.LineGap = float32(metrics.Height.Round()) - f.Ascent + f.Descent

	cells := glyphCells(face)
	side, err := packCells(cells)
	if err != nil {
		return nil, err
	}
	f.rasterize(face, cells, side)

	for _, a := range cells {
		for _, b := range cells {
			if k := face.Kern(a.r, b.r); k != 0 {
				f.Kerning[[2]rune{a.r, b.r}] = float32(k.Round())
			}
		}
	}
	return f, nil
}

// cell is one glyph's bitmap box and, once packed, its atlas origin.
type cell struct {
	r        rune
	w, h     int
	advance  float32
	left     int // x of the bitmap relative to the pen
	top      int // baseline to bitmap top
	at       image.Point
	rendered bool
}

func glyphCells(face font.Face) []cell {
	var cells []cell
	for _, rg := range charRanges {
		for r := rg[0]; r <= rg[1]; r++ {
			b, adv, ok := face.GlyphBounds(r)
			if !ok {
				continue
			}
			x0, y0 := b.Min.X.Floor(), b.Min.Y.Floor()
			cells = append(cells, cell{
				r:       r,
				w:       b.Max.X.Ceil() - x0,
				h:       b.Max.Y.Ceil() - y0,
				advance: float32(adv.Round()),
				left:    x0,
				top:     -y0,
			})
		}
	}
	return cells
}

// packCells places the visible cells on shelves inside the smallest
// power-of-two square that holds them all and returns its side.
func packCells(cells []cell) (int, error) {
	for side := minAtlasSide; side <= maxAtlasSide; side *= 2 {
		if shelve(cells, side) {
			return side, nil
		}
	}
	return 0, fmt.Errorf("font atlas too large (>%d)", maxAtlasSide)
}

func shelve(cells []cell, side int) bool {
	x, y, shelfH := cellGap, cellGap, 0
	for i := range cells {
		c := &cells[i]
		c.rendered = false
		if c.w <= 0 || c.h <= 0 {
			continue
		}
		if x+c.w+cellGap > side {
			x, y, shelfH = cellGap, y+shelfH+cellGap, 0
		}
		if x+c.w+cellGap > side || y+c.h+cellGap > side {
			return false
		}
		c.at = image.Pt(x, y)
		c.rendered = true
		x += c.w + cellGap
		shelfH = max(shelfH, c.h)
	}
	return true
}

func (f *Font) rasterize(face font.Face, cells []cell, side int) {
	f.Atlas = image.NewAlpha(image.Rect(0, 0, side, side))
	f.AtlasW, f.AtlasH = side, side
	pen := &font.Drawer{Dst: f.Atlas, Src: image.Opaque, Face: face}
	inv := 1 / float32(side)

	for _, c := range cells {
		g := Glyph{Rune: c.r, Advance: c.advance, BearingX: float32(c.left), BearingY: float32(c.top)}
		if c.rendered {
			// The dot is the baseline origin, so offset it by the bearings.
			pen.Dot = fixed.P(c.at.X-c.left, c.at.Y+c.top)
			pen.DrawString(string(c.r))
			g.W, g.H = c.w, c.h
			g.U0, g.V0 = float32(c.at.X)*inv, float32(c.at.Y)*inv
			g.U1, g.V1 = float32(c.at.X+c.w)*inv, float32(c.at.Y+c.h)*inv
		}
		f.Glyphs[c.r] = g
	}
}

// Upload creates the atlas texture on r. Calling it again replaces the
// texture reference.
func (f *Font) Upload(r core.Renderer) error {
	w, h, pix := assets.RGBAPixels(f.Atlas)
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: w, Height: h,
		Format:    core.TextureRGBA8,
		Pixels:    pix,
		MinFilter: "nearest",
		MagFilter: "nearest",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}
	f.Texture = tex
	return nil
}
