package rlwe

import "github.com/latticeforge/ringlwe/ring"

// SecretKey is a ternary polynomial of degree < N (spec.md §3). It must be
// held only by the decryptor and never cross a trust boundary.
type SecretKey struct {
	Value ring.Poly
}

// PublicKey is the pair (B, A) of spec.md §3: A is uniform in R_q, and
// B = -(A*sk + E) mod (q, f) for a ternary error E, so that B + A*sk has
// small norm.
type PublicKey struct {
	B, A ring.Poly
}
