// Package info: sentinel error set. These are the only failures the
// measures report; distribution invariants are deliberately unchecked.

package info

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTensor indicates that a nil probability tensor was passed
	// to a measure.
	ErrNilTensor = errors.New("info: nil probability tensor")

	// ErrRank indicates that a probability tensor's rank does not match
	// what the measure requires (e.g. MutualInformation needs rank 2).
	ErrRank = errors.New("info: probability tensor rank mismatch")
)

// rankErrorf wraps ErrRank with the measure name and the expected and
// observed ranks.
func rankErrorf(op string, want, got int) error {
	return fmt.Errorf("%s: want rank %d, got %d: %w", op, want, got, ErrRank)
}
