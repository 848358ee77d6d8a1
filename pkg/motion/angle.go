// Package motion implements the per-frame movement of the player character:
// heading resolution from the directional keys, translation, slew-limited
// turning and the jump arc.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotateAroundPivot rotates point around pivot in the XZ plane by degreesCW degrees clockwise.
// The Y coordinate is left untouched.
func RotateAroundPivot(point, pivot mgl32.Vec3, degreesCW float32) mgl32.Vec3 {
	sin, cos := sincosDeg(math.Mod(float64(degreesCW), 360))

	// Translate to origin
	dx := float64(point.X() - pivot.X())
	dz := float64(point.Z() - pivot.Z())

	return mgl32.Vec3{
		float32(dx*cos-dz*sin) + pivot.X(),
		point.Y(),
		float32(dx*sin+dz*cos) + pivot.Z(),
	}
}

// sincosDeg is math.Sincos for degrees with rounding residue below 1e-12 flushed to zero,
// so quarter turns land exactly on the axes.
func sincosDeg(degrees float64) (sin, cos float64) {
	sin, cos = math.Sincos(degrees * math.Pi / 180)
	if math.Abs(sin) < 1e-12 {
		sin = 0
	}
	if math.Abs(cos) < 1e-12 {
		cos = 0
	}
	return sin, cos
}

// NormalizeAngle reduces an angle in degrees into [-180, 180].
// Infinite and NaN input yields NaN.
func NormalizeAngle(angle float32) float32 {
	a := float32(math.Mod(float64(angle), 360))
	if math.IsNaN(float64(a)) {
		return a
	}
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}
