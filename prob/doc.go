// Package prob normalizes histograms into probability mass tensors.
//
// Prob1D, Prob2D and Prob3D wrap the corresponding hist builders and
// divide every count by the total, so the result's cells are
// non-negative and sum to 1 (within floating-point tolerance). These
// tensors are the sole input type of the measures in package info:
// measures never see raw samples or raw counts.
//
// Normalize performs the same division for callers that already hold a
// tensor.Counts.
//
// Error policy:
//
//   - hist errors (ErrLengthMismatch, ErrOutOfRange) propagate
//     unchanged; match them with errors.Is against the hist sentinels.
//   - An empty input (total count of zero) is reported as ErrEmptyInput
//     rather than producing a tensor of NaNs from the 0/0 division.
package prob
