package geometry

import "github.com/go-gl/mathgl/mgl32"

// Grid builds a square line grid on Y = 0 centred on the origin, with slices cells
// per side of size spacing. An odd slices is rounded down to even.
// The two lines through the origin use axisColor.
func Grid(slices int, spacing float32, color, axisColor mgl32.Vec3) Mesh {
	halfSlices := slices / 2
	half := float32(halfSlices) * spacing
	up := mgl32.Vec3{0, 1, 0}

	lines := 2 * (2*halfSlices + 1)
	vertices := make([]Vertex, 0, lines*2)
	indices := make([]uint32, 0, lines*2)

	addLine := func(from, to, c mgl32.Vec3) {
		base := uint32(len(vertices))
		vertices = append(vertices,
			Vertex{Position: from, Normal: up, Color: c},
			Vertex{Position: to, Normal: up, Color: c},
		)
		indices = append(indices, base, base+1)
	}

	for i := -halfSlices; i <= halfSlices; i++ {
		offset := float32(i) * spacing
		c := color
		if i == 0 {
			c = axisColor
		}

		// Line along Z, then line along X
		addLine(mgl32.Vec3{offset, 0, -half}, mgl32.Vec3{offset, 0, half}, c)
		addLine(mgl32.Vec3{-half, 0, offset}, mgl32.Vec3{half, 0, offset}, c)
	}

	return Mesh{Vertices: vertices, Indices: indices, Primitive: Lines}
}
