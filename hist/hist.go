package hist

import (
	"github.com/avendahl/infotheo/tensor"
)

// Hist1D counts how many samples fall into each of nbins categories.
//
// Stage 1 (Validate): nbins > 0 (tensor.ErrBadShape otherwise).
// Stage 2 (Execute): one pass over seq; every code must lie in
// [0, nbins), else ErrOutOfRange for dimension 0.
// Stage 3 (Finalize): return the freshly allocated count tensor; the
// sum of its cells equals len(seq).
//
// Complexity: O(len(seq) + nbins) time, O(nbins) memory.
func Hist1D(seq []int, nbins int) (*tensor.Counts, error) {
	h, err := tensor.NewCounts(nbins)
	if err != nil {
		return nil, err
	}

	for i, v := range seq {
		if v < 0 || v >= nbins {
			return nil, codeErrorf(0, v, i, nbins)
		}
		if err = h.Inc(v); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Hist2D counts co-occurrences of category pairs across two aligned
// sequences: cell (a, b) holds the number of positions i with
// seqA[i] == a and seqB[i] == b.
//
// Stage 1 (Validate): equal lengths (ErrLengthMismatch, checked before
// any counting); positive bin counts (tensor.ErrBadShape).
// Stage 2 (Execute): one pass over the aligned positions; codes are
// bounds-checked per dimension (ErrOutOfRange names dimension 0 or 1).
// Stage 3 (Finalize): return the (nbinsA x nbinsB) count tensor.
//
// Complexity: O(len(seqA) + nbinsA*nbinsB) time, O(nbinsA*nbinsB) memory.
func Hist2D(seqA, seqB []int, nbinsA, nbinsB int) (*tensor.Counts, error) {
	if len(seqA) != len(seqB) {
		return nil, lengthErrorf(len(seqA), len(seqB))
	}

	h, err := tensor.NewCounts(nbinsA, nbinsB)
	if err != nil {
		return nil, err
	}

	for i := range seqA {
		a, b := seqA[i], seqB[i]
		if a < 0 || a >= nbinsA {
			return nil, codeErrorf(0, a, i, nbinsA)
		}
		if b < 0 || b >= nbinsB {
			return nil, codeErrorf(1, b, i, nbinsB)
		}
		if err = h.Inc(a, b); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Hist3D counts co-occurrences of category triples across three aligned
// sequences: cell (a, b, c) holds the number of positions i with
// seqA[i] == a, seqB[i] == b and seqC[i] == c.
//
// Validation and semantics follow Hist2D, extended to a third dimension
// (ErrOutOfRange names dimension 0, 1 or 2).
//
// Complexity: O(len(seqA) + nbinsA*nbinsB*nbinsC) time,
// O(nbinsA*nbinsB*nbinsC) memory.
func Hist3D(seqA, seqB, seqC []int, nbinsA, nbinsB, nbinsC int) (*tensor.Counts, error) {
	if len(seqA) != len(seqB) || len(seqA) != len(seqC) {
		return nil, lengthErrorf(len(seqA), len(seqB), len(seqC))
	}

	h, err := tensor.NewCounts(nbinsA, nbinsB, nbinsC)
	if err != nil {
		return nil, err
	}

	for i := range seqA {
		a, b, c := seqA[i], seqB[i], seqC[i]
		if a < 0 || a >= nbinsA {
			return nil, codeErrorf(0, a, i, nbinsA)
		}
		if b < 0 || b >= nbinsB {
			return nil, codeErrorf(1, b, i, nbinsB)
		}
		if c < 0 || c >= nbinsC {
			return nil, codeErrorf(2, c, i, nbinsC)
		}
		if err = h.Inc(a, b, c); err != nil {
			return nil, err
		}
	}

	return h, nil
}
