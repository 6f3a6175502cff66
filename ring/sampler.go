package ring

import "github.com/latticeforge/ringlwe/utils/sampling"

// Sampler draws a length-n polynomial from an underlying PRNG, per
// spec.md §4.2.
type Sampler interface {
	Read(n int) Poly
}

// baseSampler holds the PRNG shared by every concrete sampler below.
type baseSampler struct {
	prng sampling.PRNG
}
