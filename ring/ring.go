// Package ring implements polynomial arithmetic over the quotient ring
// R_q = Z_q[x]/(x^N+1): reduction, addition, subtraction, negation,
// schoolbook and NTT-based multiplication, coefficient balancing, and the
// random samplers used to draw secret, error and randomness polynomials.
package ring

import "fmt"

// Ring is the immutable context that every arithmetic routine in this
// package operates under: the ring dimension N (a power of two) and the
// ciphertext modulus Q. It is a value owned by the caller and borrowed by
// each primitive, never process-wide mutable state.
type Ring struct {
	N int
	Q int64
}

// NewRing returns a Ring of dimension N over Z_Q. N must be a power of two.
func NewRing(N int, Q int64) (Ring, error) {
	if N <= 0 || N&(N-1) != 0 {
		return Ring{}, fmt.Errorf("ring: N=%d is not a power of two", N)
	}
	return Ring{N: N, Q: Q}, nil
}

// NewPoly returns a new zero polynomial of the ring's dimension N.
func (r Ring) NewPoly() Poly {
	return NewPoly(r.N)
}

// ModCoeffs reduces every coefficient of p into the balanced representative
// range (-m/2, m/2] of Z_m. The zero polynomial is returned unchanged.
// m == 0 is reserved by callers to mean "skip reduction, arithmetic in Z".
func ModCoeffs(p Poly, m int64) Poly {
	if len(p.Coeffs) == 0 {
		return p
	}
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = balance(c, m)
	}
	return Poly{Coeffs: out}
}

// balance reduces c into [0, m) via Euclidean remainder, then shifts it into
// (-m/2, m/2] by subtracting m from any coefficient strictly greater than
// m/2.
func balance(c, m int64) int64 {
	r := c % m
	if r < 0 {
		r += m
	}
	if r > m/2 {
		r -= m
	}
	return r
}

// PolyRem reduces p modulo x^N+1: coefficients at index i >= N are folded
// back into slot i%N with alternating sign per block of length N
// (r_j = sum_{i = j (mod N)} (-1)^floor(i/N) c_i). Inputs shorter than N+1
// are passed through unchanged, per spec.
func PolyRem(p Poly, N int) Poly {
	if len(p.Coeffs) < N+1 {
		return p.Copy()
	}
	out := make([]int64, N)
	for i, c := range p.Coeffs {
		block := i / N
		if block%2 == 0 {
			out[i%N] += c
		} else {
			out[i%N] -= c
		}
	}
	return Poly{Coeffs: out}
}

// reduce applies PolyRem followed by ModCoeffs(q), skipping the modular step
// when q == 0 (arithmetic in Z, per spec's Add/Sub/Neg contract).
func (r Ring) reduce(p Poly, q int64) Poly {
	out := PolyRem(p, r.N)
	if q != 0 {
		out = ModCoeffs(out, q)
	}
	return out
}
