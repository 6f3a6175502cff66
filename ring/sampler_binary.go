package ring

import "github.com/latticeforge/ringlwe/utils/sampling"

// BinarySampler draws coefficients uniformly from {0, 1}.
type BinarySampler struct {
	baseSampler
}

// NewBinarySampler creates a BinarySampler drawing from prng.
func NewBinarySampler(prng sampling.PRNG) *BinarySampler {
	return &BinarySampler{baseSampler{prng: prng}}
}

// Read draws a length-n polynomial with coefficients in {0, 1}.
func (s *BinarySampler) Read(n int) Poly {
	out := make([]int64, n)
	buf := s.prng.Clock((n + 7) / 8)
	for i := 0; i < n; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		out[i] = int64((buf[byteIdx] >> bitIdx) & 1)
	}
	return Poly{Coeffs: out}
}
