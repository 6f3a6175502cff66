package rlwe_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/rlwe"
	"github.com/latticeforge/ringlwe/utils/sampling"
)

func seedFromInt(n uint64) sampling.Seed {
	key := make([]byte, 8)
	binary.LittleEndian.PutUint64(key, n)
	return sampling.Seeded(key)
}

// TestKeygenShape is spec.md §8 scenario 1: default params, seed 0. pk[0]
// and pk[1] must have N=1024 coefficients; sk must have N coefficients in
// {-1, 0, 1}.
func TestKeygenShape(t *testing.T) {
	if testing.Short() {
		t.Skip("default N=1024 keygen skipped in -short mode")
	}
	params := rlwe.DefaultParameters()
	kg, err := rlwe.NewKeyGenerator(params, seedFromInt(0))
	require.NoError(t, err)

	pk, sk, err := kg.GenKeyPair()
	require.NoError(t, err)

	require.Equal(t, rlwe.DefaultN, pk.B.N())
	require.Equal(t, rlwe.DefaultN, pk.A.N())
	require.Equal(t, rlwe.DefaultN, sk.Value.N())
	for _, c := range sk.Value.Coeffs {
		require.True(t, c == -1 || c == 0 || c == 1)
	}
}

func toyParams(t *testing.T) rlwe.Parameters {
	t.Helper()
	params, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 64, Q: 12289, T: 2, Sigma: 8.0})
	require.NoError(t, err)
	return params
}

// TestRoundTripPolynomial is spec.md §8's "Round-trip (polynomial)"
// property: decrypt(sk, encrypt(pk, m)) == m mod t.
func TestRoundTripPolynomial(t *testing.T) {
	params := toyParams(t)

	kg, err := rlwe.NewKeyGenerator(params, sampling.FromEntropy())
	require.NoError(t, err)
	pk, sk, err := kg.GenKeyPair()
	require.NoError(t, err)

	m := ring.NewPolyFromCoeffs([]int64{1, 0, 1, 1, 0, 0, 1})

	enc, err := rlwe.NewEncryptor(params, pk, sampling.FromEntropy())
	require.NoError(t, err)
	ct, err := enc.EncryptNew(m)
	require.NoError(t, err)

	dec := rlwe.NewDecryptor(params, sk)
	got := dec.DecryptNew(ct)

	require.True(t, m.Equal(got.Resize(m.N())))
}

// TestHomomorphicAdd is spec.md §8 scenario 5: m0=[1,0,1], m1=[0,0,1],
// t=2 -> decrypt(enc(m0)+enc(m1)) == (m0+m1) mod 2 == [1,0,0].
func TestHomomorphicAdd(t *testing.T) {
	params := toyParams(t)

	kg, err := rlwe.NewKeyGenerator(params, sampling.FromEntropy())
	require.NoError(t, err)
	pk, sk, err := kg.GenKeyPair()
	require.NoError(t, err)

	m0 := ring.NewPolyFromCoeffs([]int64{1, 0, 1})
	m1 := ring.NewPolyFromCoeffs([]int64{0, 0, 1})

	enc, err := rlwe.NewEncryptor(params, pk, sampling.FromEntropy())
	require.NoError(t, err)
	u, err := enc.EncryptNew(m0)
	require.NoError(t, err)
	v, err := enc.EncryptNew(m1)
	require.NoError(t, err)

	sum := u.Add(v, params)

	dec := rlwe.NewDecryptor(params, sk)
	got := dec.DecryptNew(sum)

	want := params.Ring.Add(m0, m1, params.T)
	require.True(t, want.Equal(got.Resize(want.N())))
}

// TestHomomorphicMulDemo is spec.md §8 scenario 6: the depth-one
// multiplication demonstration.
func TestHomomorphicMulDemo(t *testing.T) {
	small, err := rlwe.NewParameters(rlwe.ParametersLiteral{N: 16, Q: 12289, T: 2})
	require.NoError(t, err)
	delta := small.Delta()

	// small.Q()^2 is composite, so squared.Omega comes back zero (no
	// primitive root exists); keygen/encrypt/MulRelinlessDemo all still
	// work because Ring.MulCoeffsNTT falls back to schoolbook convolution
	// whenever no root of unity is available.
	squaredLit := rlwe.ParametersLiteral{N: 16, Q: small.Q() * small.Q(), T: small.T}
	squared, err := rlwe.NewParameters(squaredLit)
	require.NoError(t, err)

	kg, err := rlwe.NewKeyGenerator(squared, sampling.FromEntropy())
	require.NoError(t, err)
	pk, sk, err := kg.GenKeyPair()
	require.NoError(t, err)

	m0 := ring.NewPolyFromCoeffs([]int64{1, 0, 1})
	m1 := ring.NewPolyFromCoeffs([]int64{0, 0, 1})

	enc, err := rlwe.NewEncryptor(squared, pk, sampling.FromEntropy())
	require.NoError(t, err)
	u, err := enc.EncryptNew(m0)
	require.NoError(t, err)
	v, err := enc.EncryptNew(m1)
	require.NoError(t, err)

	got, err := rlwe.MulRelinlessDemo(squared, u, v, sk, delta)
	require.NoError(t, err)

	want := squared.Ring.MulCoeffs(m0, m1, squared.T)
	require.True(t, want.Equal(got.Resize(want.N())))
}
