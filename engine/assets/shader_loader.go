package assets

import (
	"embed"
	"fmt"
	"path"
)

//go:embed shaders textures
var files embed.FS

// LoadShader reads an embedded GLSL file into a null-terminated string for
// OpenGL.
func LoadShader(name string) (string, error) {
	b, err := files.ReadFile(path.Join("shaders", name))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// QuadShaders returns the batched quad pipeline sources.
func QuadShaders() (vert, frag string, err error) {
	if vert, err = LoadShader("quad.vert"); err != nil {
		return "", "", err
	}
	if frag, err = LoadShader("quad.frag"); err != nil {
		return "", "", err
	}
	return vert, frag, nil
}
