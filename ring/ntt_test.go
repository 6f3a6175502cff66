package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/ringlwe/ring"
)

// TestPolymulAgreementSmall is spec.md §8 scenario 4: p=17, n=8,
// omega = primitive 8th root of unity mod 17, a=[1,2,3,4], b=[5,6,7,8].
// polymul(a,b,17,f) must equal polymul_fast(a,b,17,f,omega).
func TestPolymulAgreementSmall(t *testing.T) {
	const q = int64(17)
	const n = 8

	root, err := ring.FindPrimitiveRoot(n, q)
	require.NoError(t, err)
	require.True(t, ring.IsPrimitiveRoot(root, n, q))

	r, err := ring.NewRing(n, q)
	require.NoError(t, err)

	a := ring.NewPolyFromCoeffs([]int64{1, 2, 3, 4})
	b := ring.NewPolyFromCoeffs([]int64{5, 6, 7, 8})

	schoolbook := r.MulCoeffs(a, b, q)
	fast, err := r.MulCoeffsNTT(a, b)
	require.NoError(t, err)

	require.True(t, schoolbook.Equal(fast), "schoolbook=%v fast=%v", schoolbook.Coeffs, fast.Coeffs)
}

// TestPolymulAgreementDefaultModulus checks polymul/polymul_fast agreement
// at the default modulus (with a smaller ring dimension), for several fixed
// operand pairs.
func TestPolymulAgreementDefaultModulus(t *testing.T) {
	const q = int64(12289)
	const n = 64 // smaller than the production default for test speed

	r, err := ring.NewRing(n, q)
	require.NoError(t, err)

	cases := [][2][]int64{
		{unitImpulse(n, 1), unitImpulse(n, 2)},
		{smallRamp(n), reverseRamp(n)},
		{constantPoly(n, 3), constantPoly(n, -5)},
	}

	for _, c := range cases {
		a := ring.NewPolyFromCoeffs(c[0])
		b := ring.NewPolyFromCoeffs(c[1])

		schoolbook := r.MulCoeffs(a, b, q)
		fast, err := r.MulCoeffsNTT(a, b)
		require.NoError(t, err)
		require.True(t, schoolbook.Equal(fast))
	}
}

// TestFindPrimitiveRootRejectsCompositeModulus guards against a composite
// q (e.g. a squared RLWE modulus) slipping past the order-divides-q-1
// check, which holds only because (Z/qZ)* is cyclic of order q-1 for
// prime q: for composite q that guarantee is gone, and a brute-force
// search across ~q candidates must fail fast, not run to completion.
func TestFindPrimitiveRootRejectsCompositeModulus(t *testing.T) {
	const n = 16
	const q = int64(12289 * 12289) // a squared RLWE modulus: composite

	_, err := ring.FindPrimitiveRoot(2*n, q)
	require.Error(t, err)
}

// TestMulCoeffsNTTFallsBackForCompositeModulus exercises the fallback
// MulCoeffsNTT itself takes when no primitive root of unity exists: it
// must still agree with MulCoeffs (spec.md §8, "Polymul agreement"),
// rather than erroring out.
func TestMulCoeffsNTTFallsBackForCompositeModulus(t *testing.T) {
	const n = 16
	const q = int64(12289 * 12289)

	r, err := ring.NewRing(n, q)
	require.NoError(t, err)

	a := ring.NewPolyFromCoeffs([]int64{1, 0, 1})
	b := ring.NewPolyFromCoeffs([]int64{0, 0, 1})

	schoolbook := r.MulCoeffs(a, b, q)
	fast, err := r.MulCoeffsNTT(a, b)
	require.NoError(t, err)
	require.True(t, schoolbook.Equal(fast))
}

func TestNegacyclicReductionLength(t *testing.T) {
	const n = 8
	long := make([]int64, 3*n)
	for i := range long {
		long[i] = int64(i + 1)
	}
	out := ring.PolyRem(ring.NewPolyFromCoeffs(long), n)
	require.LessOrEqual(t, out.N(), n)
}

func unitImpulse(n, at int) []int64 {
	c := make([]int64, n)
	c[at] = 1
	return c
}

func smallRamp(n int) []int64 {
	c := make([]int64, n)
	for i := range c {
		c[i] = int64(i % 5)
	}
	return c
}

func reverseRamp(n int) []int64 {
	c := make([]int64, n)
	for i := range c {
		c[i] = int64((n - i) % 7)
	}
	return c
}

func constantPoly(n int, v int64) []int64 {
	c := make([]int64, n)
	for i := range c {
		c[i] = v
	}
	return c
}
