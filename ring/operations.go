package ring

// Add returns p1+p2 reduced modulo x^N+1 and (if q != 0) modulo q.
func (r Ring) Add(p1, p2 Poly, q int64) Poly {
	n := max(p1.N(), p2.N())
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = coeffAt(p1, i) + coeffAt(p2, i)
	}
	return r.reduce(Poly{Coeffs: out}, q)
}

// Sub returns p1-p2 reduced modulo x^N+1 and (if q != 0) modulo q.
func (r Ring) Sub(p1, p2 Poly, q int64) Poly {
	n := max(p1.N(), p2.N())
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = coeffAt(p1, i) - coeffAt(p2, i)
	}
	return r.reduce(Poly{Coeffs: out}, q)
}

// Neg returns the additive inverse of p, reduced modulo q when q != 0.
func (r Ring) Neg(p Poly, q int64) Poly {
	out := make([]int64, p.N())
	for i, c := range p.Coeffs {
		out[i] = -c
	}
	if q != 0 {
		return ModCoeffs(Poly{Coeffs: out}, q)
	}
	return Poly{Coeffs: out}
}

// MulCoeffs multiplies p1 and p2 by schoolbook convolution, then reduces
// modulo x^N+1 and (if q != 0) modulo q. This is the reference oracle that
// MulCoeffsNTT (the fast path) must agree with over the ring.
func (r Ring) MulCoeffs(p1, p2 Poly, q int64) Poly {
	if p1.N() == 0 || p2.N() == 0 {
		return Poly{}
	}
	out := make([]int64, p1.N()+p2.N()-1)
	for i, a := range p1.Coeffs {
		if a == 0 {
			continue
		}
		for j, b := range p2.Coeffs {
			out[i+j] += a * b
		}
	}
	return r.reduce(Poly{Coeffs: out}, q)
}
