package scene

// ScreenCamera maps pixel coordinates (origin top-left, +Y down) to clip
// space. Pan and zoom are applied around the top-left corner.
type ScreenCamera struct {
	Width, Height float32
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	vp            [16]float32
	dirty         bool
}

func NewScreenCamera(width, height int) *ScreenCamera {
	c := &ScreenCamera{Zoom: 1}
	c.SetViewportPixels(width, height)
	c.Recalculate()
	return c
}

func (c *ScreenCamera) SetViewportPixels(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *ScreenCamera) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }

func (c *ScreenCamera) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *ScreenCamera) VP() [16]float32 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

func (c *ScreenCamera) Recalculate() {
	z := c.Zoom
	proj := ortho(0, c.Width/z, c.Height/z, 0, -1, 1)
	c.vp = mul(proj, translate(-c.X, -c.Y, 0))
	c.dirty = false
}

// ScreenToWorld converts a cursor position back through pan and zoom.
func (c *ScreenCamera) ScreenToWorld(x, y float32) (float32, float32) {
	return x/c.Zoom + c.X, y/c.Zoom + c.Y
}

// ---- tiny mat helpers (column-major, GLSL-style) ----

func translate(x, y, z float32) [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// mul returns a·b.
func mul(a, b [16]float32) [16]float32 {
	var out [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = a[r+0]*b[0+4*c] + a[r+4]*b[1+4*c] + a[r+8]*b[2+4*c] + a[r+12]*b[3+4*c]
		}
	}
	return out
}

// transform applies m to the point (x, y, 0, 1).
func transform(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}
