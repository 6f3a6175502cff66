// Package sampling provides the deterministic and from-entropy random
// sources consumed by the ring package's samplers.
package sampling

import (
	"crypto/rand"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is the source of randomness consumed by every sampler in the ring
// package. Read fills buf with pseudo-random bytes; Clock is a convenience
// that returns n fresh bytes.
type PRNG interface {
	Read(buf []byte) (int, error)
	Clock(n int) []byte
}

// Seed is a two-variant tagged value: either "reproducible from this key"
// or "draw from OS entropy" (spec.md §9, "Optional seed"). Use Seeded for
// deterministic, reproducible sampling (test-only in production contexts —
// see spec.md §9, "Sampler calls ... seed reuse"), and FromEntropy for the
// production path.
type Seed struct {
	key    []byte
	random bool
}

// Seeded returns a Seed that deterministically reproduces the same PRNG
// stream for the same key.
func Seeded(key []byte) Seed {
	return Seed{key: key}
}

// FromEntropy returns a Seed instructing the caller to draw from a
// cryptographically secure OS source. This is the production default.
func FromEntropy() Seed {
	return Seed{random: true}
}

// NewPRNGFromSeed constructs a PRNG according to the Seed variant.
func NewPRNGFromSeed(s Seed) (PRNG, error) {
	if s.random {
		return NewPRNG()
	}
	return NewKeyedPRNG(s.key)
}

// entropyPRNG reads directly from crypto/rand: thread-safe on its own, with
// no shared mutable state across calls (spec.md §5).
type entropyPRNG struct{}

// NewPRNG returns a PRNG seeded from a cryptographically secure OS source.
func NewPRNG() (PRNG, error) {
	return entropyPRNG{}, nil
}

func (entropyPRNG) Read(buf []byte) (int, error) {
	return io.ReadFull(rand.Reader, buf)
}

func (p entropyPRNG) Clock(n int) []byte {
	buf := make([]byte, n)
	_, _ = p.Read(buf)
	return buf
}

// keyedPRNG deterministically and securely generates a byte stream from a
// key using the hash function blake2b, in the style of the teacher's
// dbfv.PRNG: each time its 32-byte output buffer runs dry, it folds 32 bytes
// of the current digest back into the hash state and buffers the remaining
// 32, so that two PRNGs constructed
// from the same key produce identical streams and Reset replays it from the
// start.
type keyedPRNG struct {
	key  []byte
	hash hash.Hash
	buf  []byte
}

// NewKeyedPRNG creates a new instance of PRNG seeded from key. Two PRNGs
// constructed with the same key produce identical streams; if key is nil, a
// fixed zero-length key is used (still deterministic, just unkeyed).
func NewKeyedPRNG(key []byte) (PRNG, error) {
	h, err := blake2b.New512(key)
	if err != nil {
		return nil, err
	}
	p := &keyedPRNG{key: key, hash: h}
	return p, nil
}

// Reset rewinds the PRNG back to the state immediately after construction,
// so that a subsequent Read reproduces the same stream from the beginning.
func (p *keyedPRNG) Reset() {
	h, _ := blake2b.New512(p.key)
	p.hash = h
	p.buf = nil
}

func (p *keyedPRNG) Read(buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		if len(p.buf) == 0 {
			p.buf = p.clockDigest()
		}
		c := copy(buf[n:], p.buf)
		p.buf = p.buf[c:]
		n += c
	}
	return n, nil
}

func (p *keyedPRNG) clockDigest() []byte {
	sum := p.hash.Sum(nil)
	p.hash.Write(sum[:32])
	out := make([]byte, len(sum)-32)
	copy(out, sum[32:])
	return out
}

func (p *keyedPRNG) Clock(n int) []byte {
	buf := make([]byte, n)
	_, _ = p.Read(buf)
	return buf
}
