package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"path"
)

// LoadImage decodes an embedded PNG from textures/.
func LoadImage(name string) (image.Image, error) {
	p := path.Join("textures", name)
	b, err := files.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", p, err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", p, err)
	}
	return img, nil
}

// WindowIcon is the overlay's taskbar icon.
func WindowIcon() (image.Image, error) { return LoadImage("icon.png") }

// RGBAPixels returns width, height, and tightly packed RGBA8 pixels
// (row-major, top-left origin) of img.
func RGBAPixels(img image.Image) (w, h int, rgba []byte) {
	m := ToRGBA(img)
	w, h = m.Bounds().Dx(), m.Bounds().Dy()
	if m.Stride == w*4 {
		return w, h, m.Pix[:w*h*4]
	}
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], m.Pix[y*m.Stride:y*m.Stride+w*4])
	}
	return w, h, out
}

// ToRGBA converts img to RGBA with a zero origin.
// Alpha masks become white pixels carrying the mask as alpha.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if m, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if a, ok := img.(*image.Alpha); ok {
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				v := a.AlphaAt(b.Min.X+x, b.Min.Y+y).A
				i := dst.PixOffset(x, y)
				dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = 255, 255, 255, v
			}
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
