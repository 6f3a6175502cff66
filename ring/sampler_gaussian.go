package ring

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/latticeforge/ringlwe/utils/sampling"
)

// GaussianSampler draws coefficients from the discrete Gaussian
// round(Normal(0, sigma)), per spec.md §4.2. Unused at the default
// parameters (t=2), where TernarySampler is chosen instead; provided for
// parameter sets that need wider noise.
type GaussianSampler struct {
	baseSampler
	sigma float64
	rng   *rand.Rand
}

// NewGaussianSampler creates a GaussianSampler with standard deviation
// sigma, drawing its entropy from prng.
func NewGaussianSampler(prng sampling.PRNG, sigma float64) *GaussianSampler {
	return &GaussianSampler{
		baseSampler: baseSampler{prng: prng},
		sigma:       sigma,
		rng:         rand.New(&prngSource{prng: prng}),
	}
}

// Read draws a length-n polynomial with coefficients sampled from
// round(Normal(0, sigma)), rounding half away from zero.
func (s *GaussianSampler) Read(n int) Poly {
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = int64(math.Round(s.rng.NormFloat64() * s.sigma))
	}
	return Poly{Coeffs: out}
}

// prngSource adapts a sampling.PRNG into a math/rand.Source64, so that
// math/rand's NormFloat64 (Box-Muller / ziggurat) can draw from the same
// seeded or from-entropy byte stream as every other sampler in this
// package, keeping "same seed -> same stream" true across sampler kinds.
type prngSource struct {
	prng sampling.PRNG
}

func (p *prngSource) Uint64() uint64 {
	return binary.LittleEndian.Uint64(p.prng.Clock(8))
}

func (p *prngSource) Int63() int64 {
	return int64(p.Uint64() >> 1)
}

func (p *prngSource) Seed(int64) {
	// No-op: the underlying sampling.PRNG owns seeding (spec.md §9,
	// "Optional seed"); math/rand's Seed method is not part of that
	// contract.
}
