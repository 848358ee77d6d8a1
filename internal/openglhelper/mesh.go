package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/leterax/capsule3d/pkg/geometry"
)

// Mesh is a geometry.Mesh uploaded to the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
	mode       uint32
}

// NewMesh uploads m. Vertices are laid out as position (3), normal (3), color (3).
func NewMesh(m geometry.Mesh) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(m.Flatten(), StaticDraw)
	ebo := NewEBO(m.Indices, StaticDraw)

	const stride = geometry.FloatsPerVertex * 4
	// Position attribute
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, stride, 0)
	// Normal attribute
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, stride, 3*4)
	// Color attribute
	vao.SetVertexAttribPointer(2, 3, gl.FLOAT, false, stride, 6*4)

	vao.Unbind()

	mode := uint32(gl.TRIANGLES)
	if m.Primitive == geometry.Lines {
		mode = gl.LINES
	}

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(m.Indices)),
		mode:       mode,
	}
}

// Draw renders the mesh with whatever shader is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(m.mode, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
