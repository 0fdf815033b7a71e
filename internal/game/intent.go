package game

// Intent is one frame of derived pilot input: a velocity with at most one
// step per axis, plus a fire request. Fire must be edge-triggered by the
// caller — a held key produces exactly one frame with Fire set.
type Intent struct {
	VX, VY int
	Fire   bool
}

// axisStep combines the two direction keys of one axis additively, so
// opposite keys held together cancel to zero.
func axisStep(neg, pos bool) int {
	step := 0
	if neg {
		step -= maxSpeed
	}
	if pos {
		step += maxSpeed
	}
	return step
}

// IntentFromKeys derives an Intent from raw key state. firePressed must be
// the key-down transition, not the held state.
func IntentFromKeys(up, down, left, right, firePressed bool) Intent {
	return Intent{
		VX:   axisStep(left, right),
		VY:   axisStep(up, down),
		Fire: firePressed,
	}
}
