// Package game ties the character state to the camera that follows it.
package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/capsule3d/pkg/camera"
	"github.com/leterax/capsule3d/pkg/motion"
)

// CapsuleHeight is the distance between the capsule's two sphere centres
const CapsuleHeight = 1.5

// World is the whole simulated scene: one character and its camera
type World struct {
	State      motion.State
	Camera     camera.Camera
	controller *motion.Controller

	capsuleHeight float32
	markerReach   float32
}

// NewWorld creates a world in its startup state. markerReach is how far in front of
// the character's axis the facing marker is drawn.
func NewWorld(tuning motion.Tuning, cam camera.Camera, capsuleHeight, markerReach float32) *World {
	return &World{
		State:         motion.NewState(tuning),
		Camera:        cam,
		controller:    motion.NewController(tuning),
		capsuleHeight: capsuleHeight,
		markerReach:   markerReach,
	}
}

// Step advances the world by one frame
func (w *World) Step(in motion.Input, dt time.Duration) {
	w.State = w.controller.Update(w.State, in, dt)
	w.Camera.Follow(w.State.Position)
}

// CapsuleBase returns the centre of the capsule's lower sphere, lifted by the jump
func (w *World) CapsuleBase() mgl32.Vec3 {
	return w.State.Position.Add(mgl32.Vec3{0, w.State.HeightOffset, 0})
}

// CapsuleTop returns the centre of the capsule's upper sphere
func (w *World) CapsuleTop() mgl32.Vec3 {
	return w.CapsuleBase().Add(mgl32.Vec3{0, w.capsuleHeight, 0})
}

// FacingMarker returns where the facing marker is drawn: halfway up the capsule,
// markerReach ahead of the axis in the direction of the current rotation.
func (w *World) FacingMarker() mgl32.Vec3 {
	pivot := w.CapsuleBase().Add(mgl32.Vec3{0, w.capsuleHeight / 2, 0})
	ahead := pivot.Add(mgl32.Vec3{0, 0, -w.markerReach})
	return motion.RotateAroundPivot(ahead, pivot, w.State.Rotation)
}
