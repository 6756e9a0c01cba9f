package tensor_test

import (
	"testing"

	"github.com/avendahl/infotheo/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that empty, zero and negative shapes
// are rejected with ErrBadShape before any allocation.
func TestNewDense_BadShape(t *testing.T) {
	_, err := tensor.NewDense()
	assert.ErrorIs(t, err, tensor.ErrBadShape, "empty shape must error")

	_, err = tensor.NewDense(3, 0)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "zero extent must error")

	_, err = tensor.NewDense(-1)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "negative extent must error")
}

// TestNewDenseFrom_CellCount verifies that data length must match the
// shape's cell count exactly.
func TestNewDenseFrom_CellCount(t *testing.T) {
	_, err := tensor.NewDenseFrom([]float64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "3 cells for a 2x2 shape must error")

	d, err := tensor.NewDenseFrom([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err, "4 cells for a 2x2 shape must succeed")
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "row-major order: cell (1,0) holds the third value")
}

// TestDense_AtSetBounds verifies rank and per-axis bounds checking on
// the public indexers.
func TestDense_AtSetBounds(t *testing.T) {
	d, err := tensor.NewDense(2, 3)
	require.NoError(t, err)

	_, err = d.At(1)
	assert.ErrorIs(t, err, tensor.ErrRankMismatch, "one index for rank 2 must error")

	_, err = d.At(0, 3)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "column 3 of 3 must error")

	_, err = d.At(-1, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "negative index must error")

	err = d.Set(2.5, 1, 2)
	require.NoError(t, err, "in-bounds Set must succeed")
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.5, v, "Set then At must round-trip")
}

// TestDense_SumAxis_Rank2 verifies both marginalizations of a 2x3
// tensor against hand-computed sums.
func TestDense_SumAxis_Rank2(t *testing.T) {
	d, err := tensor.NewDenseFrom([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)
	require.NoError(t, err)

	cols, err := d.SumAxis(0) // sum over rows -> length 3
	require.NoError(t, err)
	assert.Equal(t, []int{3}, cols.Shape(), "summing axis 0 of 2x3 leaves shape [3]")
	assert.Equal(t, []float64{5, 7, 9}, cols.Data(), "column sums")

	rows, err := d.SumAxis(1) // sum over columns -> length 2
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rows.Shape(), "summing axis 1 of 2x3 leaves shape [2]")
	assert.Equal(t, []float64{6, 15}, rows.Data(), "row sums")
}

// TestDense_SumAxis_Rank3 verifies that every axis of a rank-3 tensor
// marginalizes to the correct rank-2 shape and values.
func TestDense_SumAxis_Rank3(t *testing.T) {
	// shape (2,2,2): cells 0..7 in row-major order.
	d, err := tensor.NewDenseFrom([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 2, 2, 2)
	require.NoError(t, err)

	m1, err := d.SumAxis(1) // (x,z): cell (x,z) = Σ_y d[x,y,z]
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, m1.Shape())
	assert.Equal(t, []float64{2, 4, 10, 12}, m1.Data(), "axis-1 marginal values")

	m0, err := d.SumAxis(0) // (y,z): cell (y,z) = Σ_x d[x,y,z]
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, m0.Shape())
	assert.Equal(t, []float64{4, 6, 8, 10}, m0.Data(), "axis-0 marginal values")

	m2, err := d.SumAxis(2) // (x,y): cell (x,y) = Σ_z d[x,y,z]
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, m2.Shape())
	assert.Equal(t, []float64{1, 5, 9, 13}, m2.Data(), "axis-2 marginal values")

	// Chaining marginalizations reaches rank 1.
	z, err := m1.SumAxis(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, z.Shape())
	assert.Equal(t, []float64{12, 16}, z.Data(), "double marginalization")
}

// TestDense_SumAxis_Errors verifies the rank and axis guards.
func TestDense_SumAxis_Errors(t *testing.T) {
	v, err := tensor.NewDense(4)
	require.NoError(t, err)

	_, err = v.SumAxis(0)
	assert.ErrorIs(t, err, tensor.ErrRankTooLow, "rank-1 tensor cannot be reduced")

	d, err := tensor.NewDense(2, 2)
	require.NoError(t, err)

	_, err = d.SumAxis(2)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange, "axis 2 of a rank-2 tensor must error")

	_, err = d.SumAxis(-1)
	assert.ErrorIs(t, err, tensor.ErrAxisOutOfRange, "negative axis must error")
}

// TestDense_CloneIndependence verifies that Clone shares no storage
// with its source.
func TestDense_CloneIndependence(t *testing.T) {
	d, err := tensor.NewDenseFrom([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(99, 0, 0))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "mutating the clone must not touch the source")
}

// TestDense_EqualApprox verifies shape and epsilon comparison.
func TestDense_EqualApprox(t *testing.T) {
	a, _ := tensor.NewDenseFrom([]float64{0.5, 0.5}, 2)
	b, _ := tensor.NewDenseFrom([]float64{0.5, 0.5 + 1e-15}, 2)
	c, _ := tensor.NewDenseFrom([]float64{0.5, 0.5}, 1, 2)

	assert.True(t, a.EqualApprox(b, 1e-14), "within eps must compare equal")
	assert.False(t, a.EqualApprox(b, 1e-16), "outside eps must compare unequal")
	assert.False(t, a.EqualApprox(c, 1), "different rank must compare unequal")
}

// TestCounts_IncTotal verifies increments, bounds and the Total sum.
func TestCounts_IncTotal(t *testing.T) {
	c, err := tensor.NewCounts(2, 2)
	require.NoError(t, err)

	require.NoError(t, c.Inc(0, 1))
	require.NoError(t, c.Inc(0, 1))
	require.NoError(t, c.Inc(1, 0))

	v, err := c.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "two increments land in one cell")
	assert.Equal(t, 3, c.Total(), "Total equals the number of increments")

	err = c.Inc(2, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "out-of-bounds Inc must error")

	err = c.Inc(0)
	assert.ErrorIs(t, err, tensor.ErrRankMismatch, "wrong index arity must error")
}

// TestCounts_BadShape verifies constructor validation mirrors Dense.
func TestCounts_BadShape(t *testing.T) {
	_, err := tensor.NewCounts(0)
	assert.ErrorIs(t, err, tensor.ErrBadShape, "zero extent must error")

	_, err = tensor.NewCounts()
	assert.ErrorIs(t, err, tensor.ErrBadShape, "empty shape must error")
}

// TestCounts_CloneIndependence verifies deep copies of count tensors.
func TestCounts_CloneIndependence(t *testing.T) {
	c, err := tensor.NewCounts(2)
	require.NoError(t, err)
	require.NoError(t, c.Inc(0))

	cl := c.Clone()
	require.NoError(t, cl.Inc(0))

	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "mutating the clone must not touch the source")
	assert.Equal(t, 2, cl.Total(), "clone carries its own increments")
}
