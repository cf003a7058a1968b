package glbackend

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/hudlayer/engine/core"
)

// RendererGL implements core.Renderer on an OpenGL 3.3 core context that
// is current on the calling thread.
type RendererGL struct {
	info      core.RendererInfo
	pipelines []*pipeline
	textures  []*texture
	meshes    []*mesh

	w, h  int
	bound *pipeline
}

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	locs      map[string]int32
}

type texture struct {
	id   uint32
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

type mesh struct {
	vao, vbo, ebo uint32
	vertCap       int // floats
	indCap        int
	indexCount    int
}

func (m *mesh) IndexCount() int { return m.indexCount }

// Option tweaks renderer construction.
type Option func(*RendererGL)

// WithSoftware marks the context as a software (OSMesa) fallback in Info.
func WithSoftware(software bool) Option {
	return func(r *RendererGL) { r.info.Software = software }
}

// NewRendererGL requires gl.Init to have succeeded on the current context.
func NewRendererGL(_ core.Window, _ core.Config, opts ...Option) (*RendererGL, error) {
	r := &RendererGL{}
	for _, opt := range opts {
		opt(r)
	}
	r.info.Vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.info.Renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.info.Version = gl.GoStr(gl.GetString(gl.VERSION))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if err := glError("init"); err != nil {
		return nil, err
	}
	core.Logger().Debug("gl renderer created", "renderer", r.info.Renderer)
	return r, nil
}

func (r *RendererGL) Info() core.RendererInfo { return r.info }

func (r *RendererGL) Shutdown() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	for _, p := range r.pipelines {
		gl.DeleteProgram(p.program)
	}
	r.meshes, r.textures, r.pipelines = nil, nil, nil
	r.bound = nil
}

func (r *RendererGL) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	r.w, r.h = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := makeProgram(nullTerminated(desc.VertexSource), nullTerminated(desc.FragmentSource))
	if err != nil {
		return nil, err
	}
	p := &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		locs:      map[string]int32{},
	}
	r.pipelines = append(r.pipelines, p)
	return p, nil
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("unsupported texture format %d", desc.Format)
	}
	if want := desc.Width * desc.Height * 4; len(desc.Pixels) != want {
		return nil, fmt.Errorf("texture %dx%d: got %d bytes, want %d", desc.Width, desc.Height, len(desc.Pixels), want)
	}

	t := &texture{w: desc.Width, h: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(desc.WrapV))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(desc.Pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("create texture"); err != nil {
		gl.DeleteTextures(1, &t.id)
		return nil, err
	}
	r.textures = append(r.textures, t)
	return t, nil
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if len(desc.Vertices) == 0 || len(desc.Indices) == 0 {
		return nil, errors.New("create mesh: empty buffers")
	}
	m := &mesh{vertCap: len(desc.Vertices), indCap: len(desc.Indices)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(desc.Vertices)*4, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(desc.Indices)*4, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, attribType(a.Type), false, desc.Layout.Stride, uintptr(a.Offset))
	}

	// the element buffer binding is VAO state; unbind the VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if err := glError("create mesh"); err != nil {
		return nil, err
	}
	r.meshes = append(r.meshes, m)
	return m, nil
}

func (r *RendererGL) UpdateMesh(cm core.Mesh, verts []float32, inds []uint32) error {
	m, ok := cm.(*mesh)
	if !ok {
		return fmt.Errorf("update mesh: foreign mesh %T", cm)
	}
	if len(verts) > m.vertCap || len(inds) > m.indCap {
		return fmt.Errorf("update mesh: %d verts / %d inds exceed capacity %d / %d", len(verts), len(inds), m.vertCap, m.indCap)
	}
	m.indexCount = len(inds)
	if len(inds) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindVertexArray(m.vao)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(inds)*4, gl.Ptr(inds))
	gl.BindVertexArray(0)
	return nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		return
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok || m.indexCount == 0 {
		return
	}

	if r.bound != p {
		gl.UseProgram(p.program)
		r.bound = p
	}
	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}

	// Stable unit assignment: sort sampler names.
	names := make([]string, 0, len(cmd.Samplers))
	for name := range cmd.Samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	for unit, name := range names {
		t, ok := cmd.Samplers[name].(*texture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.Uniform1i(p.location(name), int32(unit))
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(m.indexCount), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (p *pipeline) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case float32:
		gl.Uniform1f(loc, x)
	case int32:
		gl.Uniform1i(loc, x)
	case int:
		gl.Uniform1i(loc, int32(x))
	case [2]float32:
		gl.Uniform2f(loc, x[0], x[1])
	case [4]float32:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &x[0])
	default:
		core.Logger().Warn("gl: unsupported uniform type", "type", fmt.Sprintf("%T", v))
	}
}

func filterMode(s string) int32 {
	if s == "nearest" {
		return gl.NEAREST
	}
	return gl.LINEAR
}

func wrapMode(s string) int32 {
	if s == "repeat" {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func attribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	default:
		return gl.FLOAT
	}
}

func glError(op string) error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, fmt.Sprintf("0x%04x", code))
		if len(codes) > 8 {
			break
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%s: gl error %s", op, strings.Join(codes, ", "))
}

// --- Shader utilities ---

func nullTerminated(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", strings.TrimRight(log, "\x00"))
	}
	return prog, nil
}
