package ring

import "github.com/latticeforge/ringlwe/utils/sampling"

// TernarySampler draws coefficients uniformly from {-1, 0, 1}. Used for the
// secret, error and randomness polynomials at the default parameters (the
// spec's ternary-noise regime, cheaper than discrete Gaussian and
// sufficient since sigma-free noise is chosen for the default q, t).
type TernarySampler struct {
	baseSampler
}

// NewTernarySampler creates a TernarySampler drawing from prng.
func NewTernarySampler(prng sampling.PRNG) *TernarySampler {
	return &TernarySampler{baseSampler{prng: prng}}
}

// Read draws a length-n polynomial with coefficients in {-1, 0, 1}, each
// with probability 1/3, via rejection sampling on 2 random bits per
// coefficient (values 0,1,2 map to -1,0,1; the value 3 is rejected and
// redrawn), which keeps the distribution exactly uniform.
func (s *TernarySampler) Read(n int) Poly {
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		for {
			b := s.prng.Clock(1)[0]
			v := b & 0x3
			if v == 3 {
				continue
			}
			out[i] = int64(v) - 1
			break
		}
	}
	return Poly{Coeffs: out}
}
