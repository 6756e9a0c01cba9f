// Package hist: sentinel error set. Tests match these via errors.Is.

package hist

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that the sample sequences supplied to
	// a multi-dimensional histogram differ in length.
	ErrLengthMismatch = errors.New("hist: sample sequences differ in length")

	// ErrOutOfRange indicates that a category code is negative or not
	// less than the bin count declared for its dimension. Raise the bin
	// count for the dimension named in the wrapped message.
	ErrOutOfRange = errors.New("hist: category code out of range")
)

// codeErrorf wraps ErrOutOfRange with the dimension, the offending code,
// its position in the sequence, and the declared bin count.
func codeErrorf(dim, code, pos, nbins int) error {
	return fmt.Errorf("hist: dimension %d: code %d at position %d outside [0,%d): %w",
		dim, code, pos, nbins, ErrOutOfRange)
}

// lengthErrorf wraps ErrLengthMismatch with the observed lengths.
func lengthErrorf(lens ...int) error {
	return fmt.Errorf("hist: sequence lengths %v: %w", lens, ErrLengthMismatch)
}
