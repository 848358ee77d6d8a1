// Package camera implements the rigid third-person camera that trails the player.
package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes where the scene is viewed from
type Camera struct {
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	Fovy       float32 // degrees for Perspective, view height in units for Orthographic
	Projection Projection

	// FollowDistance is the Z offset kept behind the followed point
	FollowDistance float32
}

// New creates a camera with the demo's defaults
func New() Camera {
	return Camera{
		Position:       DefaultPosition,
		Target:         DefaultTarget,
		Up:             WorldUp,
		Fovy:           DefaultFovy,
		Projection:     Perspective,
		FollowDistance: DefaultFollowDistance,
	}
}

// Follow pins the camera behind target: same X, FollowDistance further along Z,
// height unchanged. The camera looks straight at target.
func (c *Camera) Follow(target mgl32.Vec3) {
	c.Position[0] = target.X()
	c.Position[2] = target.Z() + c.FollowDistance
	c.Target = target
}

// ViewMatrix returns the current view matrix
func (c Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the projection matrix for a viewport of the given aspect ratio
func (c Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == Orthographic {
		top := c.Fovy / 2
		right := top * aspect
		return mgl32.Ortho(-right, right, -top, top, NearPlane, FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, NearPlane, FarPlane)
}

// ParseProjection converts a configuration name to a Projection
func ParseProjection(name string) (Projection, error) {
	switch name {
	case "", "perspective":
		return Perspective, nil
	case "orthographic":
		return Orthographic, nil
	default:
		return Perspective, fmt.Errorf("unknown projection %q", name)
	}
}

// String returns the configuration name of p
func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}
