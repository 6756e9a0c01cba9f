package info

import "github.com/avendahl/infotheo/tensor"

// ConditionalMutualInformation computes I(X;Y|Z) from a rank-3 joint
// probability tensor indexed (x, y, z), in nats:
//
//	I(X;Y|Z) = Σ p(x,y,z) · ln( p(z)·p(x,y,z) / (p(x,z)·p(y,z)) )
//
// Three marginals are derived internally from the one joint tensor:
//
//	p(x,z) = Σᵧ p(x,y,z)   — axis 1 summed out, indexed (x,z)
//	p(y,z) = Σₓ p(x,y,z)   — axis 0 summed out, indexed (y,z)
//	p(z)   = Σₓ p(x,z)     — indexed (z)
//
// Each marginal is aligned against the joint by explicit index
// projection, never by shape broadcasting: cell (x,y,z) reads its
// marginals at (x,z), (y,z) and (z). A cell contributes 0 whenever any
// of p(x,y,z), p(x,z), p(y,z), p(z) is 0.
//
// Result >= 0. Identity: I(X;Y|Z) = H(X,Z) + H(Y,Z) - H(X,Y,Z) - H(Z).
//
// Errors: ErrNilTensor, ErrRank. Complexity: O(cells).
func ConditionalMutualInformation(pxyz *tensor.Dense) (float64, error) {
	if pxyz == nil {
		return 0, ErrNilTensor
	}
	if pxyz.Rank() != 3 {
		return 0, rankErrorf("ConditionalMutualInformation", 3, pxyz.Rank())
	}

	pxz, err := pxyz.SumAxis(1)
	if err != nil {
		return 0, err
	}
	pyz, err := pxyz.SumAxis(0)
	if err != nil {
		return 0, err
	}
	pz, err := pxz.SumAxis(0)
	if err != nil {
		return 0, err
	}

	shape := pxyz.Shape()
	nx, ny, nz := shape[0], shape[1], shape[2]
	joint, mxz, myz, mz := pxyz.Data(), pxz.Data(), pyz.Data(), pz.Data()

	// Row-major projections: cell (x,y,z) sits at joint[(x*ny+y)*nz+z];
	// its marginals sit at mxz[x*nz+z], myz[y*nz+z] and mz[z].
	acc := 0.0
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			row := joint[(x*ny+y)*nz : (x*ny+y+1)*nz]
			for z := 0; z < nz; z++ {
				xyz := row[z]
				acc += logTerm(xyz, mz[z]*xyz, mxz[x*nz+z]*myz[y*nz+z])
			}
		}
	}

	return acc, nil
}
