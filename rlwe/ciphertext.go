package rlwe

import "github.com/latticeforge/ringlwe/ring"

// Ciphertext is the ordered pair (C0, C1) in R_q x R_q of spec.md §3.
type Ciphertext struct {
	C0, C1 ring.Poly
}

// Add returns the componentwise sum of ct and other, reduced modulo x^N+1
// and q. This is the homomorphic addition of spec.md §1/§8: ciphertext
// addition is plain polynomial addition, componentwise, with no
// relinearization or modulus switching involved.
func (ct Ciphertext) Add(other Ciphertext, params Parameters) Ciphertext {
	q := params.Q()
	return Ciphertext{
		C0: params.Ring.Add(ct.C0, other.C0, q),
		C1: params.Ring.Add(ct.C1, other.C1, q),
	}
}
