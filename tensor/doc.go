// Package tensor provides dense, rank-agnostic numeric tensors for
// discrete probability work.
//
// Two concrete types cover the whole pipeline:
//
//   - Counts — integer event counts (histograms) of any rank.
//   - Dense  — float64 values (probability mass tensors) of any rank.
//
// Both store their cells in a single flat, row-major backing slice with
// precomputed strides, so element access is O(1) and whole-tensor
// reductions are a single cache-friendly pass. Rank is a runtime
// property: the same Dense type represents a probability vector, a 2-D
// joint distribution, or a 3-D joint distribution.
//
// Key operations:
//
//   - At / Set / Inc — bounds-checked cell access via sentinel errors.
//   - Sum / Total    — scalar sum over all cells.
//   - SumAxis        — marginalization: sums out one axis, producing a
//     tensor of rank-1 lower (the shape with that axis removed).
//   - Data           — read-only flat view for rank-agnostic reductions.
//
// Every constructor returns a freshly allocated tensor; no tensor ever
// shares its backing storage with another. All loops traverse cells in
// fixed row-major order, so repeated computations are bit-for-bit
// deterministic.
//
// Public operations return sentinel errors (ErrBadShape, ErrOutOfRange,
// ...) and never panic on user-triggered conditions; match them with
// errors.Is.
package tensor
