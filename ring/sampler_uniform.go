package ring

import (
	"encoding/binary"

	"github.com/latticeforge/ringlwe/utils/sampling"
)

// UniformSampler draws coefficients uniformly from {0, ..., q-1}, then
// balances them into (-q/2, q/2].
type UniformSampler struct {
	baseSampler
	q int64
}

// NewUniformSampler creates a UniformSampler over Z_q drawing from prng.
func NewUniformSampler(prng sampling.PRNG, q int64) *UniformSampler {
	return &UniformSampler{baseSampler{prng: prng}, q}
}

// Read draws a length-n polynomial with coefficients uniform in
// {0, ..., q-1}, balanced into (-q/2, q/2].
func (s *UniformSampler) Read(n int) Poly {
	mask := uint64(1)
	for mask < uint64(s.q) {
		mask <<= 1
	}
	mask--

	out := make([]int64, n)
	for i := 0; i < n; i++ {
		for {
			buf := s.prng.Clock(8)
			v := binary.LittleEndian.Uint64(buf) & mask
			if v < uint64(s.q) {
				out[i] = int64(v)
				break
			}
		}
	}
	return ModCoeffs(Poly{Coeffs: out}, s.q)
}
