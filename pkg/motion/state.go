package motion

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// State is everything the character carries from one frame to the next
type State struct {
	Position     mgl32.Vec3 // feet of the character
	Heading      float32    // this frame's heading, NoHeading when idle
	LastHeading  float32    // last heading that was not NoHeading
	Rotation     float32    // displayed facing, in [-180, 180]
	JumpVelocity float32
	HeightOffset float32 // never negative
}

// Grounded reports whether the character stands on the ground
func (s State) Grounded() bool {
	return s.HeightOffset == 0
}

// NewState returns the startup state for t
func NewState(t Tuning) State {
	return State{
		Position:    t.Start,
		Heading:     NoHeading,
		LastHeading: t.InitialHeading,
		Rotation:    NormalizeAngle(t.InitialHeading),
	}
}

// Controller applies player input to a State
type Controller struct {
	Tuning Tuning
}

// NewController creates a controller with the given tuning
func NewController(t Tuning) *Controller {
	return &Controller{Tuning: t}
}

// Update returns s advanced by one frame of dt with input in.
// dt is truncated to whole milliseconds.
func (c *Controller) Update(s State, in Input, dt time.Duration) State {
	ms := float32(max(dt.Milliseconds(), 0))
	t := c.Tuning

	s.Heading = ResolveHeading(in)

	s.JumpVelocity = t.TryJump(s.JumpVelocity, s.HeightOffset, in.Pressed(Jump))
	s.JumpVelocity, s.HeightOffset = t.IntegrateJump(s.JumpVelocity, s.HeightOffset, ms)

	if s.Heading != NoHeading {
		s.LastHeading = s.Heading
		s.Position = Translate(s.Position, s.Heading, t.MoveSpeed*ms)
	}

	s.Rotation = UpdateRotation(s.Rotation, s.LastHeading, t.TurnSpeed, ms)
	return s
}
