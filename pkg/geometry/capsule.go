package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Capsule builds a capsule whose bottom sphere centre sits at the origin and whose
// top sphere centre sits at (0, height, 0). A height of 0 yields a sphere.
//
// The surface is a (slices+1) x 2*(rings+1) vertex grid. The upper half of the rows
// covers the top hemisphere, the lower half the bottom one, and the band joining them
// forms the cylinder wall.
func Capsule(radius, height float32, slices, rings int, color mgl32.Vec3) Mesh {
	rows := 2 * (rings + 1)
	cols := slices + 1

	vertices := make([]Vertex, 0, rows*cols)
	for row := 0; row < rows; row++ {
		// Polar angle from the top pole, pi/2 at the equator of each hemisphere
		var phi float64
		offset := float32(0)
		if row <= rings {
			phi = math.Pi / 2 * float64(row) / float64(rings)
			offset = height
		} else {
			phi = math.Pi/2 + math.Pi/2*float64(row-rings-1)/float64(rings)
		}
		sinPhi, cosPhi := math.Sincos(phi)

		for col := 0; col < cols; col++ {
			theta := 2 * math.Pi * float64(col) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)

			normal := mgl32.Vec3{
				float32(sinPhi * cosTheta),
				float32(cosPhi),
				float32(sinPhi * sinTheta),
			}
			vertices = append(vertices, Vertex{
				Position: normal.Mul(radius).Add(mgl32.Vec3{0, offset, 0}),
				Normal:   normal,
				Color:    color,
			})
		}
	}

	indices := make([]uint32, 0, (rows-1)*slices*6)
	for row := 0; row < rows-1; row++ {
		for col := 0; col < slices; col++ {
			a := uint32(row*cols + col)
			b := a + uint32(cols)

			// Two triangles per quad
			indices = append(indices, a, a+1, b)
			indices = append(indices, a+1, b+1, b)
		}
	}

	return Mesh{Vertices: vertices, Indices: indices, Primitive: Triangles}
}
