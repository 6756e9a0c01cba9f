package info

import "github.com/avendahl/infotheo/tensor"

// Entropy computes the entropy of a probability vector in nats:
//
//	H(X) = -Σ p(x) · ln p(x)
//
// Cells with p(x) = 0 contribute exactly 0. The input must be rank 1;
// use JointEntropy for higher-rank tensors.
//
// Result >= 0 for any valid probability vector; the maximum, ln(k), is
// reached by the uniform distribution over k categories.
//
// Errors: ErrNilTensor, ErrRank. Complexity: O(cells).
func Entropy(px *tensor.Dense) (float64, error) {
	if px == nil {
		return 0, ErrNilTensor
	}
	if px.Rank() != 1 {
		return 0, rankErrorf("Entropy", 1, px.Rank())
	}

	return negPlogP(px.Data()), nil
}

// JointEntropy computes the joint entropy of a probability tensor of any
// rank in nats:
//
//	H(X1,...,Xn) = -Σ p(x1,...,xn) · ln p(x1,...,xn)
//
// The reduction is rank-agnostic: the tensor's cells are consumed as one
// flat sequence, so a probability vector, a 2-D joint and a 3-D joint
// all go through the same single loop. On a rank-1 tensor JointEntropy
// equals Entropy.
//
// Result >= 0 for any valid probability tensor.
//
// Errors: ErrNilTensor. Complexity: O(cells).
func JointEntropy(p *tensor.Dense) (float64, error) {
	if p == nil {
		return 0, ErrNilTensor
	}

	return negPlogP(p.Data()), nil
}

// negPlogP is the shared entropy reduction: -Σ p·ln(p) over a flat cell
// view, in fixed order, with the zero convention applied per cell.
func negPlogP(cells []float64) float64 {
	acc := 0.0
	for _, p := range cells {
		acc -= logTerm(p, p, 1)
	}

	return acc
}
