// Package info computes classical information-theoretic measures over
// discrete probability tensors, in nats (natural-log base).
//
// The five measures:
//
//   - Entropy                      H(X)    — rank-1 tensor
//   - JointEntropy                 H(X...) — tensor of any rank
//   - ConditionalEntropy           H(X|Y)  — rank-2 joint tensor
//   - MutualInformation            I(X;Y)  — rank-2 joint tensor
//   - ConditionalMutualInformation I(X;Y|Z) — rank-3 joint tensor
//
// Every measure consumes only probability tensors (see package prob),
// never raw samples or counts. Marginals are derived internally by
// summing the joint tensor over the appropriate axes and are recomputed
// on every call.
//
// Zero convention: all measures share the x·ln(x) → 0 limit — any term
// with a zero factor in its weight, numerator or denominator contributes
// exactly 0, never NaN or ±Inf. The convention lives in one helper
// (logTerm) so it cannot diverge between measures.
//
// Validation boundary: measures check only structure — non-nil input and
// the documented rank (ErrNilTensor, ErrRank). They do NOT re-validate
// the non-negative/sums-to-1 invariant; a malformed tensor produces a
// mathematically incoherent (but non-crashing) result. Probability
// tensors should only ever be built by package prob, which is where that
// invariant is established.
//
// All reductions accumulate in fixed row-major order, so results are
// bit-for-bit reproducible across calls.
package info
