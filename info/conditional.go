package info

import "github.com/avendahl/infotheo/tensor"

// ConditionalEntropy computes H(X|Y) from a rank-2 joint probability
// tensor indexed (x, y), in nats:
//
//	H(X|Y) = -Σ p(x,y) · ln( p(x,y) / p(y) )
//
// The marginal p(y) = Σₓ p(x,y) is derived internally by summing out
// axis 0. A cell contributes 0 whenever p(x,y) = 0 or p(y) = 0.
//
// Result >= 0; the chain rule H(X|Y) = H(X,Y) - H(Y) holds exactly up
// to floating-point rounding.
//
// Errors: ErrNilTensor, ErrRank. Complexity: O(cells).
func ConditionalEntropy(pxy *tensor.Dense) (float64, error) {
	if pxy == nil {
		return 0, ErrNilTensor
	}
	if pxy.Rank() != 2 {
		return 0, rankErrorf("ConditionalEntropy", 2, pxy.Rank())
	}

	py, err := pxy.SumAxis(0)
	if err != nil {
		return 0, err
	}

	shape := pxy.Shape()
	nx, ny := shape[0], shape[1]
	joint, my := pxy.Data(), py.Data()

	// Row-major: cell (x,y) sits at joint[x*ny+y]; its marginal index
	// projects out x, leaving my[y].
	acc := 0.0
	for x := 0; x < nx; x++ {
		row := joint[x*ny : (x+1)*ny]
		for y := 0; y < ny; y++ {
			acc -= logTerm(row[y], row[y], my[y])
		}
	}

	return acc, nil
}
