package glbackend

import (
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/hudlayer/engine/core"
)

func TestSamplerModes(t *testing.T) {
	require.Equal(t, int32(gl.NEAREST), filterMode("nearest"))
	require.Equal(t, int32(gl.LINEAR), filterMode("linear"))
	require.Equal(t, int32(gl.LINEAR), filterMode(""))

	require.Equal(t, int32(gl.REPEAT), wrapMode("repeat"))
	require.Equal(t, int32(gl.CLAMP_TO_EDGE), wrapMode("clamp"))
	require.Equal(t, int32(gl.CLAMP_TO_EDGE), wrapMode(""))

	require.Equal(t, uint32(gl.FLOAT), attribType(core.AttribFloat32))
}

func TestNullTerminated(t *testing.T) {
	require.Equal(t, "void main(){}\x00", nullTerminated("void main(){}"))
	require.Equal(t, "x\x00", nullTerminated("x\x00"))
}

func TestUpdateMesh_RejectsOverflowWithoutGL(t *testing.T) {
	r := &RendererGL{}
	m := &mesh{vertCap: 36, indCap: 6}

	err := r.UpdateMesh(m, make([]float32, 72), make([]uint32, 12))
	require.ErrorContains(t, err, "exceed capacity")

	require.NoError(t, r.UpdateMesh(m, nil, nil))
	require.Zero(t, m.IndexCount())
}

type otherMesh struct{}

func (otherMesh) IndexCount() int { return 0 }

func TestUpdateMesh_ForeignMesh(t *testing.T) {
	r := &RendererGL{}
	require.ErrorContains(t, r.UpdateMesh(otherMesh{}, nil, nil), "foreign mesh")
}

func TestTextureSize(t *testing.T) {
	var tex core.Texture = &texture{w: 256, h: 128}
	w, h := tex.Size()
	require.Equal(t, [2]int{256, 128}, [2]int{w, h})
}
