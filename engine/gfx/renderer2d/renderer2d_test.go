package renderer2d

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hubastard/hudlayer/engine/colors"
	"github.com/hubastard/hudlayer/engine/core"
)

type fakeTexture struct{ id, w, h int }

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }

type fakeMesh struct{ n int }

func (m *fakeMesh) IndexCount() int { return m.n }

type upload struct {
	verts []float32
	inds  []uint32
}

type fakeRenderer struct {
	core.Renderer

	pipe      core.PipelineDesc
	textures  []core.TextureDesc
	meshDesc  core.MeshDesc
	uploads   []upload
	draws     []core.DrawCmd
	samplers  []map[string]core.Texture
	updateErr error
}

func (r *fakeRenderer) CreatePipeline(d core.PipelineDesc) (core.Pipeline, error) {
	r.pipe = d
	return "pipe", nil
}

func (r *fakeRenderer) CreateTexture(d core.TextureDesc) (core.Texture, error) {
	r.textures = append(r.textures, d)
	return &fakeTexture{id: len(r.textures), w: d.Width, h: d.Height}, nil
}

func (r *fakeRenderer) CreateMesh(d core.MeshDesc) (core.Mesh, error) {
	r.meshDesc = d
	return &fakeMesh{}, nil
}

func (r *fakeRenderer) UpdateMesh(m core.Mesh, verts []float32, inds []uint32) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.uploads = append(r.uploads, upload{
		verts: append([]float32(nil), verts...),
		inds:  append([]uint32(nil), inds...),
	})
	m.(*fakeMesh).n = len(inds)
	return nil
}

func (r *fakeRenderer) Draw(cmd core.DrawCmd) {
	r.draws = append(r.draws, cmd)
	s := make(map[string]core.Texture, len(cmd.Samplers))
	for k, v := range cmd.Samplers {
		s[k] = v
	}
	r.samplers = append(r.samplers, s)
}

func newTest(t *testing.T, maxQuads int) (*Renderer2D, *fakeRenderer) {
	t.Helper()
	fr := &fakeRenderer{}
	rd, err := New(fr, "vs", "fs", maxQuads)
	require.NoError(t, err)
	return rd, fr
}

func TestNew_CreatesResources(t *testing.T) {
	_, fr := newTest(t, 8)

	require.True(t, fr.pipe.Blend)
	require.False(t, fr.pipe.DepthTest)
	require.Equal(t, "vs", fr.pipe.VertexSource)

	require.Len(t, fr.textures, 1)
	require.Equal(t, []byte{255, 255, 255, 255}, fr.textures[0].Pixels)

	require.Len(t, fr.meshDesc.Vertices, 8*vertsPerQuad*vStride)
	require.Len(t, fr.meshDesc.Indices, 8*indsPerQuad)
	require.Equal(t, int32(vStride*4), fr.meshDesc.Layout.Stride)
}

func TestDrawRect_TopLeftVertices(t *testing.T) {
	rd, fr := newTest(t, 8)
	vp := [16]float32{1}

	rd.BeginScene(vp)
	rd.DrawRect(10, 20, 30, 40, colors.Red)
	rd.EndScene()

	require.Len(t, fr.draws, 1)
	require.Equal(t, vp, fr.draws[0].Uniforms["uVP"])
	require.Len(t, fr.samplers[0], 1)
	require.Contains(t, fr.samplers[0], "uTex[0]")

	v := fr.uploads[0].verts
	require.Len(t, v, vertsPerQuad*vStride)
	corners := [][2]float32{{10, 20}, {40, 20}, {10, 60}, {40, 60}}
	for i, c := range corners {
		require.InDelta(t, c[0], v[i*vStride], 1e-4, "corner %d x", i)
		require.InDelta(t, c[1], v[i*vStride+1], 1e-4, "corner %d y", i)
		require.Equal(t, []float32{1, 0, 0, 1}, v[i*vStride+2:i*vStride+6])
		require.Equal(t, float32(0), v[i*vStride+8], "white texture slot")
	}
	require.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, fr.uploads[0].inds)

	st := rd.Stats()
	require.Equal(t, 1, st.DrawCalls)
	require.Equal(t, 1, st.QuadCount)
	require.Equal(t, 4, st.TotalVertexCount())
	require.Equal(t, 6, st.TotalIndexCount())
	require.Equal(t, 1, st.TextureCount)
}

func TestDrawRect_SkipsEmptyAndInvisible(t *testing.T) {
	rd, fr := newTest(t, 8)

	rd.BeginScene([16]float32{})
	rd.DrawRect(0, 0, 0, 10, colors.White)
	rd.DrawRect(0, 0, 10, 10, colors.Transparent)
	rd.EndScene()

	require.Empty(t, fr.draws)
}

func TestFlush_WhenQuadCapacityReached(t *testing.T) {
	rd, fr := newTest(t, 2)

	rd.BeginScene([16]float32{})
	for i := 0; i < 5; i++ {
		rd.DrawRect(float32(i), 0, 1, 1, colors.White)
	}
	rd.EndScene()

	require.Len(t, fr.draws, 3)
	require.Equal(t, 3, rd.Stats().DrawCalls)
	require.Equal(t, 5, rd.Stats().QuadCount)
	require.Len(t, fr.uploads[2].inds, indsPerQuad)
}

func TestFlush_WhenTextureSlotsExhausted(t *testing.T) {
	rd, fr := newTest(t, 100)
	var texs []core.Texture
	for i := 0; i < maxTexSlots; i++ {
		tex, err := fr.CreateTexture(core.TextureDesc{Width: 4, Height: 4})
		require.NoError(t, err)
		texs = append(texs, tex)
	}

	rd.BeginScene([16]float32{})
	for _, tex := range texs {
		rd.DrawImage(0, 0, 4, 4, Whole(tex), colors.White)
	}
	rd.EndScene()

	// Slot 0 is the white texture, so only 15 user textures fit per batch.
	require.Len(t, fr.draws, 2)
	require.Len(t, fr.samplers[0], maxTexSlots)
	require.Len(t, fr.samplers[1], 2)
	require.Equal(t, texs[maxTexSlots-1], fr.samplers[1]["uTex[1]"])
}

func TestDrawImage_UsesUVs(t *testing.T) {
	rd, fr := newTest(t, 8)
	tex, _ := fr.CreateTexture(core.TextureDesc{Width: 64, Height: 32})
	sub := FromPixels(tex, 16, 8, 16, 8, 64, 32)

	rd.BeginScene([16]float32{})
	rd.DrawImage(100, 50, 16, 8, sub, colors.White)
	rd.DrawImage(0, 0, 16, 8, SubTexture2D{}, colors.White)
	rd.EndScene()

	require.Equal(t, 1, rd.Stats().QuadCount, "images without a texture are skipped")
	v := fr.uploads[0].verts
	require.Equal(t, []float32{100, 50}, v[0:2])
	require.Equal(t, []float32{116, 58}, v[3*vStride:3*vStride+2])
	require.Equal(t, []float32{0.25, 0.25}, v[6:8], "top-left uv")
	require.Equal(t, []float32{0.5, 0.5}, v[3*vStride+6:3*vStride+8], "bottom-right uv")
	require.Equal(t, float32(1), v[8], "texture in slot 1")

	whole := Whole(tex)
	require.Equal(t, SubTexture2D{Texture: tex, U0: 0, V0: 0, U1: 1, V1: 1}, whole)
}

func TestFlush_UpdateErrorDropsBatch(t *testing.T) {
	rd, fr := newTest(t, 8)
	fr.updateErr = errors.New("lost context")

	rd.BeginScene([16]float32{})
	rd.DrawRect(0, 0, 1, 1, colors.White)
	rd.EndScene()
	require.Empty(t, fr.draws)

	fr.updateErr = nil
	rd.BeginScene([16]float32{})
	rd.DrawRect(0, 0, 1, 1, colors.White)
	rd.EndScene()
	require.Len(t, fr.draws, 1)
	require.Len(t, fr.uploads[0].inds, indsPerQuad, "dropped quads do not leak into the next batch")
}
