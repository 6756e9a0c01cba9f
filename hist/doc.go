// Package hist builds multi-dimensional histograms from integer-coded
// categorical samples.
//
// Samples are zero-based category codes: a sequence over nbins
// categories contains values in [0, nbins). Hist1D counts a single
// sequence; Hist2D and Hist3D count co-occurrences across two or three
// aligned sequences of equal length, producing joint count tensors.
//
// Contracts:
//
//   - Pure functions: each call allocates and returns a fresh
//     tensor.Counts; inputs are never retained or mutated.
//   - The sum of all output cells equals the (shared) sequence length.
//   - Sparse and empty bins are valid: nbins may exceed the number of
//     categories actually present.
//   - ErrLengthMismatch — aligned sequences differ in length; detected
//     eagerly, before any counting.
//   - ErrOutOfRange — a code falls outside [0, nbins) for its
//     dimension; the wrapped message names the dimension so the caller
//     knows which bin count to raise.
//
// Encoding raw or continuous data into category codes is the caller's
// responsibility; this package only counts.
package hist
