// Counts is the integer tensor holding raw event counts (histograms).
// It mirrors Dense's layout so that normalization is a single flat pass.

package tensor

import "fmt"

// Counts is a rank-agnostic tensor of non-negative event counts.
// The zero value is not usable; construct via NewCounts.
type Counts struct {
	lay  layout
	data []int // flat backing storage, row-major, len == product(shape)
}

// NewCounts creates a zero-filled count tensor with the given shape.
// Stage 1 (Validate): rank >= 1 and all extents > 0, else ErrBadShape.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): return the new tensor.
// Complexity: O(product(shape)) time and memory.
func NewCounts(shape ...int) (*Counts, error) {
	lay, size, err := newLayout("Counts", shape)
	if err != nil {
		return nil, err
	}

	return &Counts{lay: lay, data: make([]int, size)}, nil
}

// Rank returns the number of axes. Complexity: O(1).
func (c *Counts) Rank() int { return c.lay.rank() }

// Shape returns a copy of the per-axis extents. Complexity: O(rank).
func (c *Counts) Shape() []int { return c.lay.shapeCopy() }

// Len returns the total number of cells. Complexity: O(1).
func (c *Counts) Len() int { return len(c.data) }

// At retrieves the count at the given multi-index.
// Errors: ErrRankMismatch, ErrOutOfRange. Complexity: O(rank).
func (c *Counts) At(idx ...int) (int, error) {
	off, err := c.lay.offsetOf("Counts.At", idx)
	if err != nil {
		return 0, err
	}

	return c.data[off], nil
}

// Inc increments the count at the given multi-index by one.
// Errors: ErrRankMismatch, ErrOutOfRange. Complexity: O(rank).
func (c *Counts) Inc(idx ...int) error {
	off, err := c.lay.offsetOf("Counts.Inc", idx)
	if err != nil {
		return err
	}
	c.data[off]++

	return nil
}

// Data returns the flat row-major cell view. The slice is the backing
// storage itself: callers must treat it as read-only. Complexity: O(1).
func (c *Counts) Data() []int { return c.data }

// Total returns the sum of all counts (the number of recorded events).
// Complexity: O(cells).
func (c *Counts) Total() int {
	acc := 0
	for _, v := range c.data {
		acc += v
	}

	return acc
}

// Clone returns a deep copy sharing no storage with the receiver.
// Complexity: O(cells).
func (c *Counts) Clone() *Counts {
	data := make([]int, len(c.data))
	copy(data, c.data)

	return &Counts{lay: layout{shape: c.lay.shapeCopy(), stride: append([]int(nil), c.lay.stride...)}, data: data}
}

// String implements fmt.Stringer for easy debugging.
func (c *Counts) String() string {
	return fmt.Sprintf("Counts%v%v", c.lay.shape, c.data)
}
