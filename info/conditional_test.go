package info_test

import (
	"math/rand"
	"testing"

	"github.com/avendahl/infotheo/info"
	"github.com/avendahl/infotheo/prob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConditionalEntropy_Regression pins the literal 2x2 fixture.
func TestConditionalEntropy_Regression(t *testing.T) {
	pxy := mustDense(t, []float64{0.5, 0.0, 0.25, 0.25}, 2, 2)

	h, err := info.ConditionalEntropy(pxy)
	require.NoError(t, err)
	assert.InDelta(t, 0.4773856262211097, h, 1e-15, "literal H(X|Y) value")
}

// TestConditionalEntropy_AllZero verifies that an all-zero tensor (every
// term skipped by the zero convention) reduces to exactly 0.
func TestConditionalEntropy_AllZero(t *testing.T) {
	pxy := mustDense(t, []float64{0, 0, 0, 0}, 2, 2)

	h, err := info.ConditionalEntropy(pxy)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h, "no live cells, no contribution")
}

// TestConditionalEntropy_RankGuard verifies the structural checks.
func TestConditionalEntropy_RankGuard(t *testing.T) {
	_, err := info.ConditionalEntropy(nil)
	assert.ErrorIs(t, err, info.ErrNilTensor, "nil tensor must error")

	_, err = info.ConditionalEntropy(mustDense(t, []float64{0.5, 0.5}, 2))
	assert.ErrorIs(t, err, info.ErrRank, "rank-1 input must error")

	_, err = info.ConditionalEntropy(mustDense(t, []float64{1}, 1, 1, 1))
	assert.ErrorIs(t, err, info.ErrRank, "rank-3 input must error")
}

// TestConditionalEntropy_ChainRule verifies, over random estimated
// joints, that H(X|Y) = H(X,Y) - H(Y) within 1e-14.
func TestConditionalEntropy_ChainRule(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for iter := 0; iter < nIter; iter++ {
		x := randSeq(rng, seqLen, 3)
		y := randSeq(rng, seqLen, 3)

		pxy, err := prob.Prob2D(x, y, 4, 4)
		require.NoError(t, err)
		py, err := pxy.SumAxis(0)
		require.NoError(t, err)

		hCond, err := info.ConditionalEntropy(pxy)
		require.NoError(t, err)
		hJoint, err := info.JointEntropy(pxy)
		require.NoError(t, err)
		hy, err := info.Entropy(py)
		require.NoError(t, err)

		assert.InDelta(t, hJoint-hy, hCond, eps, "chain rule H(X|Y) = H(X,Y) - H(Y)")
		assert.GreaterOrEqual(t, hCond, 0.0, "conditional entropy is never negative")
	}
}

// TestConditionalEntropy_BayesRule verifies, over random estimated
// joints, that H(Y|X) = H(X|Y) - H(X) + H(Y).
func TestConditionalEntropy_BayesRule(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for iter := 0; iter < nIter; iter++ {
		x := randSeq(rng, seqLen, 3)
		y := randSeq(rng, seqLen, 3)

		pxy, err := prob.Prob2D(x, y, 4, 4)
		require.NoError(t, err)
		pyx, err := prob.Prob2D(y, x, 4, 4)
		require.NoError(t, err)
		px, err := prob.Prob1D(x, 4)
		require.NoError(t, err)
		py, err := prob.Prob1D(y, 4)
		require.NoError(t, err)

		hXgivenY, err := info.ConditionalEntropy(pxy)
		require.NoError(t, err)
		hYgivenX, err := info.ConditionalEntropy(pyx)
		require.NoError(t, err)
		hx, err := info.Entropy(px)
		require.NoError(t, err)
		hy, err := info.Entropy(py)
		require.NoError(t, err)

		assert.InDelta(t, hXgivenY-hx+hy, hYgivenX, eps, "Bayes rule for conditional entropies")
	}
}
