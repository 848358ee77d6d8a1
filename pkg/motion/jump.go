package motion

// The jump is an impulse followed by linear decay, not projectile motion.
// Height integrates (velocity - gravity) and is clamped at the ground, while the
// velocity decays on its own and is not reset on landing.

// TryJump returns the launch velocity when the character is grounded and jump was
// pressed this frame, otherwise the current velocity.
func (t Tuning) TryJump(velocity, height float32, pressed bool) float32 {
	if pressed && height == 0 {
		return t.JumpVelocity
	}
	return velocity
}

// IntegrateJump advances the jump by elapsedMs milliseconds and returns the new
// velocity and height offset.
func (t Tuning) IntegrateJump(velocity, height, elapsedMs float32) (float32, float32) {
	height += t.HeightScale * (velocity - t.Gravity) * elapsedMs

	if velocity > 0 {
		velocity = max(velocity-t.HeightScale*t.Gravity*elapsedMs, 0)
	}
	if height < 0 {
		height = 0
	}
	return velocity, height
}
