// Package infotheo estimates discrete probability distributions from
// categorical samples and computes exact information-theoretic measures
// over them — entropy, joint entropy, conditional entropy, mutual
// information and conditional mutual information, all in nats.
//
// 🚀 What is infotheo?
//
//	A small, deterministic library for discrete-variable information
//	measures, aimed at feature selection, dependency analysis and
//	causal-discovery preprocessing:
//		• Histograms: count category tuples from 1, 2 or 3 aligned sequences
//		• Probabilities: normalize counts into probability mass tensors
//		• Entropies: H(X), joint H over any rank, conditional H(X|Y)
//		• Information: I(X;Y) and conditional I(X;Y|Z)
//
// ✨ Why choose infotheo?
//
//   - Exact semantics – one x·ln(x) → 0 zero convention shared by every measure
//   - Rock-solid errors – sentinel errors, errors.Is everywhere, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed accumulation order, bit-for-bit reproducible
//
// Under the hood, everything is organized under four subpackages:
//
//	tensor/ — dense, rank-agnostic count and probability tensors
//	hist/   — histogram builders over integer category codes
//	prob/   — normalization of histograms into probability tensors
//	info/   — the five information measures
//
// Quick example:
//
//	x := []int{0, 0, 1, 1, 2, 2}
//	y := []int{1, 0, 0, 1, 2, 2}
//
//	pxy, err := prob.Prob2D(x, y, 3, 3)
//	if err != nil {
//		// handle hist.ErrLengthMismatch / hist.ErrOutOfRange / prob.ErrEmptyInput
//	}
//	mi, _ := info.MutualInformation(pxy)
//	fmt.Println("I(X;Y) =", mi, "nats")
//
// The pipeline is strict: samples feed hist, hist feeds prob, and the
// measures in info consume only probability tensors produced by prob.
//
//	go get github.com/avendahl/infotheo
package infotheo
