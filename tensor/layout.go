package tensor

import "fmt"

// layout is the shape/stride bookkeeping shared by Counts and Dense.
// shape holds the extent of each axis; stride holds the row-major flat
// stride of each axis (stride[rank-1] == 1).
type layout struct {
	shape  []int
	stride []int
}

// newLayout validates shape and computes row-major strides.
// Stage 1 (Validate): rank >= 1 and every extent > 0, else ErrBadShape.
// Stage 2 (Prepare): copy shape, compute strides from the last axis up.
// Stage 3 (Finalize): return layout and total cell count.
// Complexity: O(rank).
func newLayout(typ string, shape []int) (layout, int, error) {
	if len(shape) == 0 {
		return layout{}, 0, fmt.Errorf("%s: empty shape: %w", typ, ErrBadShape)
	}
	for d, n := range shape {
		if n <= 0 {
			return layout{}, 0, fmt.Errorf("%s: axis %d extent %d: %w", typ, d, n, ErrBadShape)
		}
	}

	shp := make([]int, len(shape))
	copy(shp, shape)

	str := make([]int, len(shp))
	size := 1
	for d := len(shp) - 1; d >= 0; d-- {
		str[d] = size
		size *= shp[d]
	}

	return layout{shape: shp, stride: str}, size, nil
}

// rank returns the number of axes.
func (l layout) rank() int { return len(l.shape) }

// offsetOf maps a multi-index to its flat offset, validating rank and
// per-axis bounds. op names the public method for error context.
// Complexity: O(rank).
func (l layout) offsetOf(op string, idx []int) (int, error) {
	if len(idx) != len(l.shape) {
		return 0, fmt.Errorf("%s: %d indices for rank %d: %w", op, len(idx), len(l.shape), ErrRankMismatch)
	}
	off := 0
	for d, i := range idx {
		if i < 0 || i >= l.shape[d] {
			return 0, fmt.Errorf("%s: axis %d index %d outside [0,%d): %w", op, d, i, l.shape[d], ErrOutOfRange)
		}
		off += i * l.stride[d]
	}

	return off, nil
}

// shapeCopy returns a defensive copy of the shape, so callers can never
// corrupt the layout through the returned slice.
func (l layout) shapeCopy() []int {
	out := make([]int, len(l.shape))
	copy(out, l.shape)

	return out
}

// drop returns the shape with the given axis removed. The axis must
// already be validated by the caller.
func (l layout) drop(axis int) []int {
	out := make([]int, 0, len(l.shape)-1)
	for d, n := range l.shape {
		if d == axis {
			continue
		}
		out = append(out, n)
	}

	return out
}
