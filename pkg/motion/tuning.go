package motion

import "github.com/go-gl/mathgl/mgl32"

// Default tuning values. Rates are expressed per millisecond of frame time.
const (
	DefaultMoveSpeed      = 0.01 // units per millisecond
	DefaultTurnSpeed      = 0.5  // degrees per millisecond
	DefaultJumpVelocity   = 3.0
	DefaultGravity        = 1.0
	DefaultHeightScale    = 0.01
	DefaultInitialHeading = 180.0

	// SettleThreshold is the angular difference below which turning snaps to the target
	SettleThreshold = 0.01
)

// DefaultStart is where the character's feet are placed at startup
var DefaultStart = mgl32.Vec3{0, 2, 0}

// Tuning holds the constants that drive a Controller
type Tuning struct {
	Start          mgl32.Vec3
	InitialHeading float32
	MoveSpeed      float32
	TurnSpeed      float32
	JumpVelocity   float32
	Gravity        float32
	HeightScale    float32
}

// DefaultTuning returns the tuning the demo ships with
func DefaultTuning() Tuning {
	return Tuning{
		Start:          DefaultStart,
		InitialHeading: DefaultInitialHeading,
		MoveSpeed:      DefaultMoveSpeed,
		TurnSpeed:      DefaultTurnSpeed,
		JumpVelocity:   DefaultJumpVelocity,
		Gravity:        DefaultGravity,
		HeightScale:    DefaultHeightScale,
	}
}
