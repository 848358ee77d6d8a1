// Package geometry builds the CPU-side meshes drawn by the renderer.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the flattened size of a Vertex: position, normal, color
const FloatsPerVertex = 9

// Primitive is how the indices of a Mesh are assembled
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// Vertex represents a 3D vertex with position, normal, and color
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Mesh is an indexed vertex list
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Primitive Primitive
}

// Flatten packs the vertices as x, y, z, nx, ny, nz, r, g, b
func (m Mesh) Flatten() []float32 {
	data := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.Color[:]...)
	}
	return data
}
