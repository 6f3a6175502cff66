package ring

// PolyMulNTT implements the NTT-multiplication contract of spec.md §9
// ("Separation of concerns"): given operands already zero-padded to length
// N (a power of two) and root a primitive N-th root of unity mod q, it
// returns the length-N coefficients of x*y mod q as a cyclic convolution
// (forward NTT of both operands, pointwise multiply, inverse NTT). It does
// not reduce the result modulo the ring polynomial x^n+1 or rebalance
// coefficients —
// callers that want the negacyclic product call MulCoeffsNTT instead.
func PolyMulNTT(x, y []int64, N int, root, q int64) []int64 {
	X := NTT(x, root, q)
	Y := NTT(y, root, q)
	Z := make([]int64, N)
	for i := range Z {
		Z[i] = modMul(X[i], Y[i], q)
	}
	return InvNTT(Z, root, q)
}

// MulCoeffsNTT multiplies p1 and p2 via negacyclic NTT convolution
// (spec.md §4.1 "NTT multiplication"):
//  1. N = 2*nextPow2(max(len(p1),len(p2))).
//  2. both operands zero-padded to length N.
//  3. a fresh primitive N-th root of unity is found for N (resolving the
//     spec.md §9 Open Question: reusing a root computed for a different
//     order silently produces a wrong answer once operands are already
//     padded, e.g. by a prior multiplication).
//  4. PolyMulNTT computes the length-N cyclic product.
//  5. PolyRem folds the cyclic product down to the ring (the negacyclic
//     fold: adjacent blocks cancel with alternating sign).
//  6. ModCoeffs rebalances into (-q/2, q/2].
//
// The result must equal MulCoeffs(p1, p2, q) for all inputs (spec.md §8,
// "Polymul agreement"). When r.Q admits no primitive N-th root of unity —
// because it is composite, as for the squared ring the depth-one
// multiplication demo runs under — this falls back to MulCoeffs
// (schoolbook convolution, which needs no root of unity) instead of
// failing: grounded on original_source/src/crypto/tests.rs's
// test_hom_prod, which deliberately never uses NTT-based multiplication
// under a squared modulus.
func (r Ring) MulCoeffsNTT(p1, p2 Poly) (Poly, error) {
	n1, n2 := p1.N(), p2.N()
	if n1 == 0 || n2 == 0 {
		return Poly{}, nil
	}
	N := 2 * nextPowerOfTwo(max(n1, n2))

	root, err := FindPrimitiveRoot(N, r.Q)
	if err != nil {
		return r.MulCoeffs(p1, p2, r.Q), nil
	}

	xpad := p1.Resize(N)
	ypad := p2.Resize(N)

	prod := PolyMulNTT(xpad.Coeffs, ypad.Coeffs, N, root, r.Q)
	out := PolyRem(Poly{Coeffs: prod}, r.N)
	return ModCoeffs(out, r.Q), nil
}

func nextPowerOfTwo(x int) int {
	if x <= 1 {
		return 1
	}
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}
