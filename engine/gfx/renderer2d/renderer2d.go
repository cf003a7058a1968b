// Package renderer2d batches screen-space rectangles into as few draw calls
// as the texture slots allow. Coordinates are pixels with a top-left origin;
// the view-projection passed to BeginScene maps them to clip space.
package renderer2d

import (
	"strconv"

	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/core"
)

// Texture units sampled by quad.frag.
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1.
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics counts what the current scene submitted.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s Statistics) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r     core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture // always slot 0

	maxQuads int
	verts    []float32
	inds     []uint32 // fixed pattern for maxQuads quads
	quads    int

	slots    [maxTexSlots]core.Texture
	used     int
	names    [maxTexSlots]string
	samplers map[string]core.Texture
	uniforms map[string]any

	vp    [16]float32
	stats Statistics
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads.
// The shaders must consume quadVertexLayout and expose uVP and uTex[16].
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		Blend:          true,
	})
	if err != nil {
		return nil, err
	}
	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, err
	}

	inds := make([]uint32, 0, maxQuads*indsPerQuad)
	for q := uint32(0); q < uint32(maxQuads); q++ {
		v := q * vertsPerQuad
		inds = append(inds, v, v+2, v+1, v+1, v+2, v+3)
	}
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  inds,
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, err
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, mesh: mesh, white: white,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     inds,
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.names {
		rd.names[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.reset()
	return rd, nil
}

// BeginScene starts a frame of quads drawn with vp.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.reset()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawRect fills a rectangle. Empty or fully transparent rectangles are
// skipped.
func (rd *Renderer2D) DrawRect(x, y, w, h float32, color colors.Color) {
	if w <= 0 || h <= 0 || color[3] <= 0 {
		return
	}
	rd.quad(x, y, x+w, y+h, color, rd.white, 0, 0, 1, 1)
}

// DrawImage draws the img sub-rectangle stretched over x,y,w,h, multiplied
// by tint.
func (rd *Renderer2D) DrawImage(x, y, w, h float32, img SubTexture2D, tint colors.Color) {
	if w <= 0 || h <= 0 || img.Texture == nil {
		return
	}
	rd.quad(x, y, x+w, y+h, tint, img.Texture, img.U0, img.V0, img.U1, img.V1)
}

func (rd *Renderer2D) quad(x0, y0, x1, y1 float32, c colors.Color, tex core.Texture, u0, v0, u1, v1 float32) {
	if rd.quads >= rd.maxQuads {
		rd.flush()
	}
	slot := float32(rd.slot(tex))
	rd.verts = append(rd.verts,
		x0, y0, c[0], c[1], c[2], c[3], u0, v0, slot,
		x1, y0, c[0], c[1], c[2], c[3], u1, v0, slot,
		x0, y1, c[0], c[1], c[2], c[3], u0, v1, slot,
		x1, y1, c[0], c[1], c[2], c[3], u1, v1, slot,
	)
	rd.quads++
	rd.stats.QuadCount++
}

// slot returns the texture unit for t, flushing when all units are taken.
func (rd *Renderer2D) slot(t core.Texture) int {
	for i := 0; i < rd.used; i++ {
		if rd.slots[i] == t {
			return i
		}
	}
	if rd.used == maxTexSlots {
		rd.flush()
	}
	rd.slots[rd.used] = t
	rd.used++
	return rd.used - 1
}

func (rd *Renderer2D) flush() {
	if rd.quads == 0 {
		return
	}
	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds[:rd.quads*indsPerQuad]); err != nil {
		core.Logger().Error("renderer2d: batch dropped", "quads", rd.quads, "err", err)
		rd.reset()
		return
	}

	clear(rd.samplers)
	for i := 0; i < rd.used; i++ {
		rd.samplers[rd.names[i]] = rd.slots[i]
	}
	rd.uniforms["uVP"] = rd.vp

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.used)
	rd.reset()
}

func (rd *Renderer2D) reset() {
	rd.verts = rd.verts[:0]
	rd.quads = 0
	clear(rd.slots[:])
	rd.slots[0] = rd.white
	rd.used = 1
}
