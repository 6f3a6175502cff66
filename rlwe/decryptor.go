package rlwe

import "github.com/latticeforge/ringlwe/ring"

// Decryptor decrypts ciphertexts under a fixed SecretKey and Parameters.
type Decryptor struct {
	params Parameters
	sk     SecretKey
}

// NewDecryptor creates a Decryptor for sk under params. sk must never leave
// the decryption context (spec.md §3, "Lifecycle").
func NewDecryptor(params Parameters, sk SecretKey) *Decryptor {
	return &Decryptor{params: params, sk: sk}
}

// DecryptNew decrypts ct into a plaintext polynomial with coefficients in
// {0, ..., t-1}, per spec.md §4.5:
//
//  1. scaled <- c1*sk + c0 (mod q, f)
//  2. for each coefficient c of scaled: d <- nearestInt(c*t, q); reduce d
//     mod t into {0, ..., t-1}.
//
// Decryption succeeds with overwhelming probability when the accumulated
// noise stays within the noise budget (spec.md §4.5); if it doesn't, this
// silently returns a wrong value rather than an error (spec.md §7,
// "DecryptionNoiseFailure": "not distinguishable from valid output").
func (dec *Decryptor) DecryptNew(ct Ciphertext) ring.Poly {
	params := dec.params
	q, t := params.Q(), params.T
	r := params.Ring

	c1sk, err := r.MulCoeffsNTT(ct.C1, dec.sk.Value)
	if err != nil {
		// Unreachable: MulCoeffsNTT falls back to schoolbook convolution
		// rather than erroring when its modulus has no root of unity
		// (e.g. a composite Q), so it never returns a non-nil error.
		panic(err)
	}
	scaled := r.Add(c1sk, ct.C0, q)

	out := make([]int64, scaled.N())
	for i, c := range scaled.Coeffs {
		d := nearestInt(c*t, q)
		out[i] = euclidMod(d, t)
	}
	return ring.Poly{Coeffs: out}
}

// nearestInt returns the integer closest to a/b, rounding half toward +inf
// when a >= 0 and toward -inf when a < 0 (spec.md §4.5).
func nearestInt(a, b int64) int64 {
	if a > 0 {
		return (a + b/2) / b
	}
	return -((-a + b/2) / b)
}

// euclidMod reduces d mod t into {0, ..., t-1}.
func euclidMod(d, t int64) int64 {
	r := d % t
	if r < 0 {
		r += t
	}
	return r
}
