package rlwe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/rlwe"
)

func TestDefaultParametersAreValid(t *testing.T) {
	params := rlwe.DefaultParameters()
	require.Equal(t, rlwe.DefaultN, params.N())
	require.Equal(t, rlwe.DefaultQ, params.Q())
	require.True(t, ring.IsPrimitiveRoot(params.Omega, 2*params.N(), params.Q()))
}

func TestNewParametersRejectsBadOmega(t *testing.T) {
	_, err := rlwe.NewParameters(rlwe.ParametersLiteral{
		N: 8, Q: 17, T: 2, Omega: 2, // 2 has order 8 mod 17, so it is not a primitive 16th (2N-th) root of unity
	})
	require.Error(t, err)
}

func TestNewParametersDerivesOmegaWhenUnset(t *testing.T) {
	params, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 8, Q: 17, T: 2})
	require.NoError(t, err)
	require.True(t, ring.IsPrimitiveRoot(params.Omega, 16, 17))
}

func TestNewParametersRejectsNonPowerOfTwoN(t *testing.T) {
	_, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 10, Q: 17, T: 2})
	require.Error(t, err)
}

// TestNewParametersLeavesOmegaZeroForCompositeQ covers the squared-modulus
// case the depth-one multiplication demo needs (spec.md §8 scenario 6):
// construction must succeed quickly, not fail or search exhaustively,
// when Q admits no primitive root of unity.
func TestNewParametersLeavesOmegaZeroForCompositeQ(t *testing.T) {
	params, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 16, Q: 12289 * 12289, T: 2})
	require.NoError(t, err)
	require.Equal(t, int64(0), params.Omega)
}

func TestParametersEqual(t *testing.T) {
	a, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 8, Q: 17, T: 2})
	require.NoError(t, err)
	b, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 8, Q: 17, T: 2})
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 8, Q: 17, T: 4})
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}
