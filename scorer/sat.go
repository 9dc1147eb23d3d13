package scorer

// maxScore is the saturation ceiling for a score lane. Scores are carried
// in uint16 to match a 16-bit SIMD lane; nothing in the core ever produces
// or consumes a wider value.
const maxScore = 65535

// satAdd adds delta (positive or negative) to a and clamps the result to
// [0, maxScore]. All forward-pass arithmetic routes through this so the
// "saturating at 0 and 65535" rule in the recurrence is enforced in one
// place rather than at each call site.
func satAdd(a uint16, delta int32) uint16 {
	v := int32(a) + delta
	switch {
	case v < 0:
		return 0
	case v > maxScore:
		return maxScore
	default:
		return uint16(v)
	}
}

// satSub subtracts a non-negative delta from a, clamping at 0. Used for
// gap-open/gap-extend penalties and the mismatch penalty, none of which
// can push a lane below zero, the local-alignment floor.
func satSub(a uint16, delta int32) uint16 {
	return satAdd(a, -delta)
}

// max16 returns the greatest of its arguments. Smith–Waterman's H
// recurrence always maxes over at least two candidates plus a zero floor.
func max16(vals ...uint16) uint16 {
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
