package anim

import "faceplate/internal/face"

// Approach moves every label of cur toward the same label in tgt by at most step
// per axis, never past the target.
//
// Labels missing from tgt are left out of the result. Poses whose target lacks
// labels therefore shrink; the loader can rule that out with
// face.WithRequiredLabels.
func Approach(cur, tgt face.Pose, step int) face.Pose {
	next := make(face.Pose, len(cur))
	for label, c := range cur {
		t, ok := tgt[label]
		if !ok {
			continue
		}
		next[label] = face.KeyPoint{
			X: approachAxis(c.X, t.X, step),
			Y: approachAxis(c.Y, t.Y, step),
		}
	}
	return next
}

func approachAxis(cur, tgt, step int) int {
	switch {
	case cur < tgt:
		return min(cur+step, tgt)
	case cur > tgt:
		return max(cur-step, tgt)
	default:
		return cur
	}
}

// converged reports whether stepping cur toward tgt would change nothing.
func converged(cur, tgt face.Pose) bool {
	for label, c := range cur {
		t, ok := tgt[label]
		if !ok || t != c {
			return false
		}
	}
	return true
}
