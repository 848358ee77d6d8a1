package game

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/capsule3d/pkg/camera"
	"github.com/leterax/capsule3d/pkg/motion"
)

func newTestWorld() *World {
	return NewWorld(motion.DefaultTuning(), camera.New(), CapsuleHeight, 2.5)
}

func forward() motion.Snapshot {
	return motion.Snapshot{Held: motion.NewActionSet(motion.Forward)}
}

func TestStepMovesCharacterAndCamera(t *testing.T) {
	w := newTestWorld()
	start := w.State.Position

	w.Step(forward(), 1000*time.Millisecond)

	pos := w.State.Position
	if d := start.Z() - pos.Z(); d < 9.999 || d > 10.001 {
		t.Errorf("expected a 10 unit step forward, moved %v", d)
	}
	if abs(pos.X()-start.X()) > 1e-4 || pos.Y() != start.Y() {
		t.Errorf("unexpected sideways or vertical movement: %v -> %v", start, pos)
	}

	if w.Camera.Target != pos {
		t.Errorf("camera target: got %v, want %v", w.Camera.Target, pos)
	}
	if w.Camera.Position.Z() != pos.Z()+camera.DefaultFollowDistance {
		t.Errorf("camera Z: got %v, want %v", w.Camera.Position.Z(), pos.Z()+camera.DefaultFollowDistance)
	}
	if w.Camera.Position.X() != pos.X() {
		t.Errorf("camera X: got %v, want %v", w.Camera.Position.X(), pos.X())
	}
}

func TestCapsuleFollowsJump(t *testing.T) {
	w := newTestWorld()

	if w.CapsuleBase() != w.State.Position {
		t.Errorf("grounded capsule base %v, want %v", w.CapsuleBase(), w.State.Position)
	}

	w.Step(motion.Snapshot{Edges: motion.NewActionSet(motion.Jump)}, 16*time.Millisecond)

	base := w.CapsuleBase()
	if base.Y() != w.State.Position.Y()+w.State.HeightOffset || w.State.HeightOffset <= 0 {
		t.Errorf("capsule base %v does not include height offset %v", base, w.State.HeightOffset)
	}
	if top := w.CapsuleTop(); abs(top.Y()-base.Y()-CapsuleHeight) > 1e-5 {
		t.Errorf("capsule top %v is not %v above base %v", top, CapsuleHeight, base)
	}
	if w.Camera.Target != w.State.Position {
		t.Errorf("camera should track the feet, not the jump: %v", w.Camera.Target)
	}
}

func TestFacingMarker(t *testing.T) {
	w := newTestWorld()
	centre := w.State.Position.Add(mgl32.Vec3{0, CapsuleHeight / 2, 0})

	// Starts facing 180: marker sits behind the character on +Z
	want := centre.Add(mgl32.Vec3{0, 0, 2.5})
	if got := w.FacingMarker(); !vecNear(got, want, 1e-4) {
		t.Errorf("initial marker: got %v, want %v", got, want)
	}

	w.Step(motion.Snapshot{Held: motion.NewActionSet(motion.Right)}, 1000*time.Millisecond)
	centre = w.State.Position.Add(mgl32.Vec3{0, CapsuleHeight / 2, 0})
	want = centre.Add(mgl32.Vec3{2.5, 0, 0})
	if got := w.FacingMarker(); !vecNear(got, want, 1e-4) {
		t.Errorf("marker facing right: got %v, want %v", got, want)
	}
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	return a.Sub(b).Len() <= eps
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestFacingMarkerOnAxisWhenSettled(t *testing.T) {
	w := newTestWorld()
	base := w.State.Position

	// 180 is a half turn of the -Z offset, so the marker lies on the character's X
	if got := w.FacingMarker(); got.X() != base.X() {
		t.Errorf("marker X = %v, want exactly %v", got.X(), base.X())
	}
}
