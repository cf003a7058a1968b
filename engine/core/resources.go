package core

// Texture is an opaque GPU texture owned by a Renderer.
type Texture interface {
	Size() (w, h int)
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

// TextureDesc describes pixel data for CreateTexture. Filters are "nearest"
// or "linear"; wraps are "clamp" or "repeat". Empty strings pick linear and
// clamp.
type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte

	MinFilter, MagFilter string
	WrapU, WrapV         string
}

// Pipeline is a compiled shader program plus fixed-function state.
type Pipeline interface{}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool // straight alpha: src*a + dst*(1-a)
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

// Mesh is an indexed vertex buffer. Its capacity is fixed at creation;
// UpdateMesh replaces the first len(verts)/len(inds) elements.
type Mesh interface {
	IndexCount() int
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws the first IndexCount indices of Mesh.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any // float32, int32, [2]float32, [4]float32, [16]float32
	Samplers map[string]Texture
}
