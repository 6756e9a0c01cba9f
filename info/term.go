package info

import "math"

// logTerm evaluates w * ln(num/den) under the shared zero convention:
// if any operand is exactly 0 the whole term is 0, following the
// x·ln(x) → 0 limit. Every measure in this package funnels its per-cell
// terms through this one helper so the convention cannot drift between
// them.
func logTerm(w, num, den float64) float64 {
	if w == 0 || num == 0 || den == 0 {
		return 0
	}

	return w * math.Log(num/den)
}
