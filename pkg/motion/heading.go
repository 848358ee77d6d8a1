package motion

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NoHeading is the heading reported when no directional key is held
const NoHeading float32 = -1

// headingRules lists key combinations in priority order. Diagonals come first.
var headingRules = []struct {
	keys    ActionSet
	heading float32
}{
	{NewActionSet(Forward, Right), 45},
	{NewActionSet(Right, Back), 135},
	{NewActionSet(Back, Left), 225},
	{NewActionSet(Left, Forward), 315},
	{NewActionSet(Forward), 0},
	{NewActionSet(Right), 90},
	{NewActionSet(Back), 180},
	{NewActionSet(Left), 270},
}

// ResolveHeading maps the held directional keys to a compass heading in degrees,
// clockwise from forward. It returns NoHeading when nothing applies.
func ResolveHeading(in Input) float32 {
	for _, rule := range headingRules {
		if allDown(in, rule.keys) {
			return rule.heading
		}
	}
	return NoHeading
}

func allDown(in Input, keys ActionSet) bool {
	for a := Forward; a <= Left; a++ {
		if keys.Has(a) && !in.Down(a) {
			return false
		}
	}
	return true
}

// Translate moves pos by distance along heading on the XZ plane.
// Heading 0 points down -Z, 90 points down +X.
func Translate(pos mgl32.Vec3, heading, distance float32) mgl32.Vec3 {
	sin, cos := sincosDeg(float64(heading) - 90)

	pos[0] += distance * float32(cos)
	pos[2] += distance * float32(sin)
	return pos
}
