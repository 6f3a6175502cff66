package rlwe

import (
	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/utils/sampling"
)

// Encryptor encrypts plaintext polynomials under a fixed PublicKey and
// Parameters, in the style of the teacher's encryptorBase
// (rlwe/encryptor.go): constructed once from a PRNG, reused across calls.
type Encryptor struct {
	params   Parameters
	pk       PublicKey
	uSampler ring.Sampler
	e1       ring.Sampler
	e2       ring.Sampler
}

// NewEncryptor creates an Encryptor for pk under params, drawing randomness
// according to seed.
func NewEncryptor(params Parameters, pk PublicKey, seed sampling.Seed) (*Encryptor, error) {
	prng, err := sampling.NewPRNGFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &Encryptor{
		params:   params,
		pk:       pk,
		uSampler: ring.NewTernarySampler(prng),
		e1:       ring.NewTernarySampler(prng),
		e2:       ring.NewTernarySampler(prng),
	}, nil
}

// EncryptNew encrypts plaintext m (coefficients in {0, ..., t-1}) into a
// ciphertext (c0, c1) in R_q x R_q, per spec.md §4.4:
//
//  1. scale: mDelta <- mod_coeffs(m*q/t, q), computed as (m*q) then
//     integer-divided by t coefficientwise — never floor(q/t) first, since
//     that loses precision when t does not divide q.
//  2. sample u, e1, e2 <- ternary(N), independent draws.
//  3. c0 <- b*u + e1 + mDelta (mod q, f)
//  4. c1 <- a*u + e2          (mod q, f)
func (enc *Encryptor) EncryptNew(m ring.Poly) (Ciphertext, error) {
	params := enc.params
	q, t := params.Q(), params.T
	r := params.Ring

	mDelta := scaleMessage(m, q, t)

	u := enc.uSampler.Read(r.N)
	e1 := enc.e1.Read(r.N)
	e2 := enc.e2.Read(r.N)

	bu, err := r.MulCoeffsNTT(enc.pk.B, u)
	if err != nil {
		return Ciphertext{}, err
	}
	c0 := r.Add(r.Add(bu, e1, q), mDelta, q)

	au, err := r.MulCoeffsNTT(enc.pk.A, u)
	if err != nil {
		return Ciphertext{}, err
	}
	c1 := r.Add(au, e2, q)

	return Ciphertext{C0: c0, C1: c1}, nil
}

// scaleMessage computes mod_coeffs(m*q/t, q), multiplying each coefficient
// by q then dividing by t with integer (truncating) division, as spec.md
// §4.4 requires: computing floor(q/t) first and multiplying by m would
// lose precision whenever t does not divide q.
func scaleMessage(m ring.Poly, q, t int64) ring.Poly {
	out := make([]int64, m.N())
	for i, c := range m.Coeffs {
		out[i] = (c * q) / t
	}
	return ring.ModCoeffs(ring.Poly{Coeffs: out}, q)
}
