// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// tensor package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package tensor

import "errors"

// Every message is prefixed with "tensor: ..." for consistency and easy
// grepping across logs. Context (which axis, which index) is added by
// wrapping with fmt.Errorf("...: %w", ErrX); callers still match the
// sentinel with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid:
	// zero rank, or any extent <= 0. Constructors validate before
	// allocation.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrRankMismatch indicates that the number of indices supplied to
	// At/Set/Inc differs from the tensor's rank.
	ErrRankMismatch = errors.New("tensor: index rank mismatch")

	// ErrOutOfRange indicates that an index is outside the valid bounds
	// of its axis. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrAxisOutOfRange indicates that an axis argument does not name an
	// existing axis of the tensor.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")

	// ErrRankTooLow signals that an operation requiring rank >= 2
	// (SumAxis) was invoked on a rank-1 tensor.
	ErrRankTooLow = errors.New("tensor: rank too low for axis reduction")

	// ErrNilTensor indicates that a nil *Counts or *Dense was used.
	ErrNilTensor = errors.New("tensor: nil tensor")
)
