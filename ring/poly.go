package ring

import "golang.org/x/exp/constraints"

// Poly is the structure that contains the coefficients of a polynomial.
//
// A Poly is length-flexible: arithmetic routines treat a polynomial and
// its zero-padded form as equal, and Coeffs may carry trailing zeros or
// be shorter than the ring dimension N. The ring structure (reduction
// modulo x^N+1) is enforced only by PolyRem, never by this type.
type Poly struct {
	Coeffs []int64
}

// NewPoly returns a new zero polynomial with N coefficients.
func NewPoly(N int) Poly {
	return Poly{Coeffs: make([]int64, N)}
}

// NewPolyFromCoeffs returns a Poly wrapping the given coefficients directly
// (no copy).
func NewPolyFromCoeffs(coeffs []int64) Poly {
	return Poly{Coeffs: coeffs}
}

// N returns the number of stored coefficients (not necessarily the ring
// dimension: see the type doc comment).
func (p Poly) N() int {
	return len(p.Coeffs)
}

// Copy returns an independent copy of p.
func (p Poly) Copy() Poly {
	c := make([]int64, len(p.Coeffs))
	copy(c, p.Coeffs)
	return Poly{Coeffs: c}
}

// Resize returns a copy of p zero-extended (or truncated) to exactly n
// coefficients.
func (p Poly) Resize(n int) Poly {
	out := make([]int64, n)
	copy(out, p.Coeffs[:min(n, len(p.Coeffs))])
	return Poly{Coeffs: out}
}

// Equal reports whether p and q represent the same polynomial, treating
// trailing zero coefficients as insignificant (spec: "a polynomial and its
// zero-padded form are equal").
func (p Poly) Equal(q Poly) bool {
	n := max(len(p.Coeffs), len(q.Coeffs))
	for i := 0; i < n; i++ {
		if coeffAt(p, i) != coeffAt(q, i) {
			return false
		}
	}
	return true
}

func coeffAt(p Poly, i int) int64 {
	if i < len(p.Coeffs) {
		return p.Coeffs[i]
	}
	return 0
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
