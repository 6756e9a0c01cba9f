package prob

import (
	"errors"
	"fmt"

	"github.com/avendahl/infotheo/hist"
	"github.com/avendahl/infotheo/tensor"
)

// ErrEmptyInput indicates a zero total count: an empty sample sequence
// (or an all-zero histogram) has no defined probability distribution.
var ErrEmptyInput = errors.New("prob: empty input, probability undefined")

// ErrNilTensor indicates that a nil *tensor.Counts was passed to
// Normalize.
var ErrNilTensor = errors.New("prob: nil count tensor")

// Normalize divides every cell of a count tensor by the total count,
// producing a probability mass tensor of the same shape.
//
// Stage 1 (Validate): non-nil input (ErrNilTensor); total > 0
// (ErrEmptyInput — never a 0/0 NaN tensor).
// Stage 2 (Execute): one flat pass dividing each count by the total.
// Stage 3 (Finalize): return the fresh tensor; cells sum to 1 within
// floating-point tolerance.
//
// Complexity: O(cells) time and memory.
func Normalize(c *tensor.Counts) (*tensor.Dense, error) {
	if c == nil {
		return nil, ErrNilTensor
	}

	total := c.Total()
	if total == 0 {
		return nil, fmt.Errorf("Normalize: total count 0: %w", ErrEmptyInput)
	}

	p, err := tensor.NewDense(c.Shape()...)
	if err != nil {
		return nil, err
	}

	n := float64(total)
	out, in := p.Data(), c.Data()
	for i, v := range in {
		out[i] = float64(v) / n
	}

	return p, nil
}

// Prob1D estimates the probability of each of nbins categories from a
// sample sequence. Errors from hist.Hist1D propagate unchanged;
// an empty sequence yields ErrEmptyInput.
// Complexity: O(len(seq) + nbins).
func Prob1D(seq []int, nbins int) (*tensor.Dense, error) {
	h, err := hist.Hist1D(seq, nbins)
	if err != nil {
		return nil, err
	}

	return Normalize(h)
}

// Prob2D estimates the joint probability of category pairs across two
// aligned sequences: cell (a, b) is the fraction of positions holding
// that pair. Errors from hist.Hist2D propagate unchanged; empty
// sequences yield ErrEmptyInput.
// Complexity: O(len(seqA) + nbinsA*nbinsB).
func Prob2D(seqA, seqB []int, nbinsA, nbinsB int) (*tensor.Dense, error) {
	h, err := hist.Hist2D(seqA, seqB, nbinsA, nbinsB)
	if err != nil {
		return nil, err
	}

	return Normalize(h)
}

// Prob3D estimates the joint probability of category triples across
// three aligned sequences. Errors from hist.Hist3D propagate unchanged;
// empty sequences yield ErrEmptyInput.
// Complexity: O(len(seqA) + nbinsA*nbinsB*nbinsC).
func Prob3D(seqA, seqB, seqC []int, nbinsA, nbinsB, nbinsC int) (*tensor.Dense, error) {
	h, err := hist.Hist3D(seqA, seqB, seqC, nbinsA, nbinsB, nbinsC)
	if err != nil {
		return nil, err
	}

	return Normalize(h)
}
