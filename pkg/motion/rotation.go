package motion

// UpdateRotation turns current toward target along the shortest arc, moving at most
// turnSpeed*elapsedMs degrees. Differences under SettleThreshold snap to target.
// The result is always normalized.
func UpdateRotation(current, target, turnSpeed, elapsedMs float32) float32 {
	diff := NormalizeAngle(target - current)
	if abs(diff) < SettleThreshold {
		return NormalizeAngle(target)
	}

	step := turnSpeed * elapsedMs
	if diff > 0 {
		// clockwise
		current += min(diff, step)
	} else {
		current += max(diff, -step)
	}

	return NormalizeAngle(current)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
