package camera

import "github.com/go-gl/mathgl/mgl32"

// Projection selects how the camera maps the scene to the screen
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

// Camera constants
const (
	// Field of view
	DefaultFovy = 45.0

	// Clip planes
	NearPlane = 0.01
	FarPlane  = 1000.0

	// DefaultFollowDistance is how far behind the target the camera sits on Z
	DefaultFollowDistance = 15.0
)

// Default placement before the first Follow
var (
	DefaultPosition = mgl32.Vec3{0, 25, 5}
	DefaultTarget   = mgl32.Vec3{0, 0, 0}
	WorldUp         = mgl32.Vec3{0, 1, 0} // Y-up coordinate system
)
