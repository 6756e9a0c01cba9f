package info

import "github.com/avendahl/infotheo/tensor"

// MutualInformation computes I(X;Y) from a rank-2 joint probability
// tensor indexed (x, y), in nats:
//
//	I(X;Y) = Σ p(x,y) · ln( p(x,y) / (p(x)·p(y)) )
//
// Both marginals are derived internally: p(x) = Σᵧ p(x,y) (axis 1
// summed out) and p(y) = Σₓ p(x,y) (axis 0 summed out). A cell
// contributes 0 whenever any of p(x,y), p(x), p(y) is 0.
//
// Result >= 0, and symmetric: the transposed joint yields the same
// value. Identity: I(X;Y) = H(X) + H(Y) - H(X,Y).
//
// Errors: ErrNilTensor, ErrRank. Complexity: O(cells).
func MutualInformation(pxy *tensor.Dense) (float64, error) {
	if pxy == nil {
		return 0, ErrNilTensor
	}
	if pxy.Rank() != 2 {
		return 0, rankErrorf("MutualInformation", 2, pxy.Rank())
	}

	px, err := pxy.SumAxis(1)
	if err != nil {
		return 0, err
	}
	py, err := pxy.SumAxis(0)
	if err != nil {
		return 0, err
	}

	shape := pxy.Shape()
	nx, ny := shape[0], shape[1]
	joint, mx, my := pxy.Data(), px.Data(), py.Data()

	// Row-major: cell (x,y) sits at joint[x*ny+y]; projecting out y
	// gives mx[x], projecting out x gives my[y].
	acc := 0.0
	for x := 0; x < nx; x++ {
		row := joint[x*ny : (x+1)*ny]
		for y := 0; y < ny; y++ {
			acc += logTerm(row[y], row[y], mx[x]*my[y])
		}
	}

	return acc, nil
}
