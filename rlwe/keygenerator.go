package rlwe

import (
	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/utils/sampling"
)

// KeyGenerator generates secret/public key pairs for a fixed set of
// Parameters, in the style of the teacher's KeyGenerator
// (core/rlwe/keygenerator.go): a small constructed type holding the
// samplers it needs, rather than a free function re-deriving them on every
// call.
type KeyGenerator struct {
	params     Parameters
	skSampler  ring.Sampler
	aSampler   ring.Sampler
	errSampler ring.Sampler
}

// NewKeyGenerator creates a KeyGenerator for params, drawing randomness
// according to seed (spec.md §4.3: "optional seed").
func NewKeyGenerator(params Parameters, seed sampling.Seed) (*KeyGenerator, error) {
	prng, err := sampling.NewPRNGFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &KeyGenerator{
		params:     params,
		skSampler:  ring.NewTernarySampler(prng),
		aSampler:   ring.NewUniformSampler(prng, params.Q()),
		errSampler: ring.NewTernarySampler(prng),
	}, nil
}

// GenKeyPair generates a (PublicKey, SecretKey) pair (spec.md §4.3):
//
//  1. sk <- ternary(N)
//  2. a  <- uniform(N, q)
//  3. e  <- ternary(N)
//  4. b  <- (-a)*sk + (-e) (mod q, f)
//
// Security note (spec.md §4.3): if the KeyGenerator's seed is a Seeded
// seed, sk, a and e are independent draws from the same deterministic
// stream; production callers must use sampling.FromEntropy(), not a fixed
// seed (spec.md §9, "Sampler calls ... seed reuse").
func (kg *KeyGenerator) GenKeyPair() (PublicKey, SecretKey, error) {
	q := kg.params.Q()
	r := kg.params.Ring

	sk := kg.skSampler.Read(r.N)
	a := kg.aSampler.Read(r.N)
	e := kg.errSampler.Read(r.N)

	negA := r.Neg(a, q)
	aSk, err := r.MulCoeffsNTT(negA, sk)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	negE := r.Neg(e, q)
	b := r.Add(aSk, negE, q)

	return PublicKey{B: b, A: a}, SecretKey{Value: sk}, nil
}
