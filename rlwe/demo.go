package rlwe

import "github.com/latticeforge/ringlwe/ring"

// MulRelinlessDemo implements the depth-one homomorphic multiplication
// demonstrated in spec.md §8 scenario 6 and §1 ("a depth-one multiplication
// is demonstrated but not exposed as a primitive"). It is not a relinearize-
// and-continue primitive: there is no relinearization key and no modulus
// switching (spec.md Non-goals), so the result cannot itself be fed back
// into another homomorphic multiplication.
//
// paramsSq must be the Parameters that the keys and the ciphertexts u and v
// were generated under, with modulus Q the square of a base modulus q
// (spec.md §8 scenario 6: "Raise q to q^2"). delta is the scaling factor
// (q/T) of the base, unsquared parameters.
//
// A squared modulus is composite, so it admits no primitive root of unity
// for rlwe.NewParameters to derive: paramsSq.Omega is left zero, and every
// r.MulCoeffsNTT call below transparently falls back to schoolbook
// convolution (ring.Ring.MulCoeffs) instead of the NTT fast path — the
// same choice original_source/src/crypto/tests.rs's test_hom_prod makes
// deliberately (it never calls the NTT-based polymul for this squared-
// modulus computation, only schoolbook polymul).
//
// Given ciphertexts u=(u0,u1) and v=(v0,v1) encrypting m0, m1 under the
// same secret key sk:
//
//  1. (c0,c1,c2) = (u0*v0, u0*v1+u1*v0, u1*v1)
//  2. eval       = c0 + c1*sk + c2*sk^2 (mod q^2, f)
//  3. each coefficient of eval is divided by delta^2 with nearest-integer
//     rounding, then balanced into Z_t.
//
// The result equals (m0*m1) mod (t, f).
func MulRelinlessDemo(paramsSq Parameters, u, v Ciphertext, sk SecretKey, delta int64) (ring.Poly, error) {
	r := paramsSq.Ring
	q, t := paramsSq.Q(), paramsSq.T

	c0, err := r.MulCoeffsNTT(u.C0, v.C0)
	if err != nil {
		return ring.Poly{}, err
	}
	u0v1, err := r.MulCoeffsNTT(u.C0, v.C1)
	if err != nil {
		return ring.Poly{}, err
	}
	u1v0, err := r.MulCoeffsNTT(u.C1, v.C0)
	if err != nil {
		return ring.Poly{}, err
	}
	c1 := r.Add(u0v1, u1v0, q)

	c2, err := r.MulCoeffsNTT(u.C1, v.C1)
	if err != nil {
		return ring.Poly{}, err
	}

	c1sk, err := r.MulCoeffsNTT(c1, sk.Value)
	if err != nil {
		return ring.Poly{}, err
	}
	skSq, err := r.MulCoeffsNTT(sk.Value, sk.Value)
	if err != nil {
		return ring.Poly{}, err
	}
	c2skSq, err := r.MulCoeffsNTT(c2, skSq)
	if err != nil {
		return ring.Poly{}, err
	}

	eval := r.Add(r.Add(c0, c1sk, q), c2skSq, q)

	deltaSq := delta * delta
	out := make([]int64, eval.N())
	for i, c := range eval.Coeffs {
		out[i] = nearestInt(c, deltaSq)
	}
	return ring.ModCoeffs(ring.Poly{Coeffs: out}, t), nil
}
