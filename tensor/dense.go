// Dense is the float64 tensor used for probability mass functions and
// their marginals. Flat row-major storage keeps reductions a single
// sequential pass, which in turn keeps every result deterministic.

package tensor

import "fmt"

// Dense is a rank-agnostic tensor of float64 values.
// The zero value is not usable; construct via NewDense or NewDenseFrom.
type Dense struct {
	lay  layout
	data []float64 // flat backing storage, row-major, len == product(shape)
}

// NewDense creates a zero-filled tensor with the given shape.
// Stage 1 (Validate): rank >= 1 and all extents > 0, else ErrBadShape.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new tensor.
// Complexity: O(product(shape)) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	lay, size, err := newLayout("Dense", shape)
	if err != nil {
		return nil, err
	}

	return &Dense{lay: lay, data: make([]float64, size)}, nil
}

// NewDenseFrom creates a tensor with the given shape, copying cells from
// data in row-major order. len(data) must equal product(shape), else
// ErrBadShape. Handy for literal test fixtures.
// Complexity: O(len(data)).
func NewDenseFrom(data []float64, shape ...int) (*Dense, error) {
	t, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("Dense: %d cells for shape %v: %w", len(data), shape, ErrBadShape)
	}
	copy(t.data, data)

	return t, nil
}

// Rank returns the number of axes. Complexity: O(1).
func (t *Dense) Rank() int { return t.lay.rank() }

// Shape returns a copy of the per-axis extents. Complexity: O(rank).
func (t *Dense) Shape() []int { return t.lay.shapeCopy() }

// Len returns the total number of cells. Complexity: O(1).
func (t *Dense) Len() int { return len(t.data) }

// At retrieves the cell at the given multi-index.
// Errors: ErrRankMismatch, ErrOutOfRange. Complexity: O(rank).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.lay.offsetOf("Dense.At", idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set assigns v to the cell at the given multi-index.
// Errors: ErrRankMismatch, ErrOutOfRange. Complexity: O(rank).
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.lay.offsetOf("Dense.Set", idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Data returns the flat row-major cell view. The slice is the backing
// storage itself: callers must treat it as read-only. It exists so that
// rank-agnostic reductions (joint entropy, total mass) are one loop over
// one slice regardless of rank. Complexity: O(1).
func (t *Dense) Data() []float64 { return t.data }

// Sum returns the sum of all cells in fixed row-major order.
// Complexity: O(cells).
func (t *Dense) Sum() float64 {
	acc := 0.0
	for _, v := range t.data {
		acc += v
	}

	return acc
}

// SumAxis sums out one axis, returning the marginal tensor whose shape
// is the receiver's shape with that axis removed.
//
// Stage 1 (Validate): rank >= 2 (ErrRankTooLow), 0 <= axis < rank
// (ErrAxisOutOfRange).
// Stage 2 (Prepare): allocate the output tensor.
// Stage 3 (Execute): one row-major pass over the input, maintaining the
// multi-index as an odometer and projecting it onto the output by
// skipping the summed axis.
//
// Accumulation order is fixed, so SumAxis is deterministic.
// Complexity: O(cells * rank) time, O(output cells) memory.
func (t *Dense) SumAxis(axis int) (*Dense, error) {
	if t == nil {
		return nil, ErrNilTensor
	}
	if t.Rank() < 2 {
		return nil, fmt.Errorf("Dense.SumAxis(%d): rank %d: %w", axis, t.Rank(), ErrRankTooLow)
	}
	if axis < 0 || axis >= t.Rank() {
		return nil, fmt.Errorf("Dense.SumAxis(%d): rank %d: %w", axis, t.Rank(), ErrAxisOutOfRange)
	}

	out, err := NewDense(t.lay.drop(axis)...)
	if err != nil {
		return nil, err
	}

	idx := make([]int, t.Rank())
	for _, v := range t.data {
		// Project the current multi-index onto the output offset,
		// skipping the summed-out axis.
		off, k := 0, 0
		for d, i := range idx {
			if d == axis {
				continue
			}
			off += i * out.lay.stride[k]
			k++
		}
		out.data[off] += v

		// Advance the odometer: bump the last axis, carry leftward.
		for d := t.Rank() - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < t.lay.shape[d] {
				break
			}
			idx[d] = 0
		}
	}

	return out, nil
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(cells).
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Dense{lay: layout{shape: t.lay.shapeCopy(), stride: append([]int(nil), t.lay.stride...)}, data: data}
}

// EqualApprox reports whether two tensors have identical shape and every
// pair of cells differs by at most eps. Complexity: O(cells).
func (t *Dense) EqualApprox(o *Dense, eps float64) bool {
	if t == nil || o == nil {
		return t == o
	}
	if len(t.lay.shape) != len(o.lay.shape) {
		return false
	}
	for d, n := range t.lay.shape {
		if o.lay.shape[d] != n {
			return false
		}
	}
	for i, v := range t.data {
		d := v - o.data[i]
		if d < -eps || d > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (t *Dense) String() string {
	return fmt.Sprintf("Dense%v%v", t.lay.shape, t.data)
}
