/*
Package ringlwe implements a ring-learning-with-errors public-key
cryptosystem over R_q = Z_q[x]/(x^N+1):

  - ring: polynomial representation, modular reduction, NTT-accelerated
    multiplication, and the sampler distributions (ternary, uniform,
    binary, discrete Gaussian); keygen and encryption draw from the
    ternary and uniform ones.
  - rlwe: parameters, key generation, encryption, decryption, and a
    depth-one homomorphic multiplication demonstration.
  - codec: binary + base64 serialization of keys and ciphertexts, and a
    string convenience API built on top of the polynomial primitives.

See SPEC_FULL.md for the full specification this module implements.
*/
package ringlwe
