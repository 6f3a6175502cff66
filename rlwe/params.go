// Package rlwe implements the three-stage ring-learning-with-errors
// protocol (keygen / encrypt / decrypt) over the ring R_q = Z_q[x]/(x^N+1),
// including the scaling, rounding and error-polynomial sampling required
// for correct decryption (spec.md §4.3-§4.5).
package rlwe

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/latticeforge/ringlwe/ring"
)

// DefaultN, DefaultQ, DefaultT and DefaultSigma are the fixed parameter
// defaults of spec.md §3. q=12289 is the smallest NTT-friendly prime with
// 2N | q-1 for N=1024 in common use by ring-LWE toy implementations.
const (
	DefaultN     = 1024
	DefaultQ     = int64(12289)
	DefaultT     = int64(2)
	DefaultSigma = 8.0
)

// ParametersLiteral is the plain configuration struct a caller fills in and
// passes to NewParameters, mirroring the teacher's ParametersLiteral ->
// NewParametersFromLiteral split (core/rlwe/params.go): a bare data record
// distinct from the validated runtime Parameters type below. Omega, if
// zero, is derived automatically.
type ParametersLiteral struct {
	N     int
	Q     int64
	T     int64
	Sigma float64
	Omega int64
}

// DefaultParametersLiteral returns spec.md §3's fixed defaults.
func DefaultParametersLiteral() ParametersLiteral {
	return ParametersLiteral{N: DefaultN, Q: DefaultQ, T: DefaultT, Sigma: DefaultSigma}
}

// Parameters is the immutable, validated record of spec.md §3: ring
// dimension N, ciphertext modulus Q, plaintext modulus T, the modulus
// polynomial F = x^N+1 (implicit, carried via Ring.N), a primitive 2N-th
// root of unity Omega, and the Gaussian standard deviation Sigma.
//
// Omega is zero for a Q that admits no primitive 2N-th root of unity (a
// composite Q, such as the squared modulus the depth-one multiplication
// demo runs under — see rlwe.MulRelinlessDemo): that is not an error, it
// just means ring.Ring.MulCoeffsNTT falls back to schoolbook convolution
// for this Parameters value instead of using the NTT fast path.
//
// Parameters are created once per process and borrowed read-only by every
// operation (spec.md §9, "Shared parameter object") — never placed in
// process-wide mutable storage.
type Parameters struct {
	Ring  ring.Ring
	T     int64
	Omega int64
	Sigma float64
}

// NewParameters validates lit and returns the corresponding Parameters.
//
// When lit.Omega is zero, NewParameters tries to derive a primitive 2N-th
// root of unity. If Q is prime and admits one, it is recorded in Omega;
// if Q is composite (e.g. a squared modulus) or otherwise admits none,
// Omega is left zero rather than failing construction, since Omega is
// only needed for the NTT fast path and plenty of valid Parameters (like
// the squared ring of the depth-one multiplication demo) have no use for
// it. When lit.Omega is supplied explicitly, it is always validated and a
// bad one is always an error (spec.md §7, "ParameterInconsistency":
// "supplied omega is not a valid 2N-th root of unity mod q").
func NewParameters(lit ParametersLiteral) (Parameters, error) {
	r, err := ring.NewRing(lit.N, lit.Q)
	if err != nil {
		return Parameters{}, err
	}

	if lit.T <= 0 {
		return Parameters{}, fmt.Errorf("rlwe: plaintext modulus t=%d must be positive", lit.T)
	}

	omega := lit.Omega
	if omega == 0 {
		if derived, derr := ring.FindPrimitiveRoot(2*lit.N, lit.Q); derr == nil {
			omega = derived
		}
	} else if !ring.IsPrimitiveRoot(omega, 2*lit.N, lit.Q) {
		return Parameters{}, fmt.Errorf("rlwe: omega=%d is not a primitive %d-th root of unity mod %d", omega, 2*lit.N, lit.Q)
	}

	sigma := lit.Sigma
	if sigma == 0 {
		sigma = DefaultSigma
	}

	return Parameters{Ring: r, T: lit.T, Omega: omega, Sigma: sigma}, nil
}

// DefaultParameters returns the validated Parameters for spec.md §3's
// fixed defaults (N=1024, Q=12289, T=2, Sigma=8.0).
func DefaultParameters() Parameters {
	p, err := NewParameters(DefaultParametersLiteral())
	if err != nil {
		// Unreachable: the compiled-in defaults satisfy every invariant
		// NewParameters checks.
		panic(err)
	}
	return p
}

// N returns the ring dimension.
func (p Parameters) N() int { return p.Ring.N }

// Q returns the ciphertext modulus.
func (p Parameters) Q() int64 { return p.Ring.Q }

// Delta returns floor(Q/T), the scaling factor embedding a plaintext
// coefficient into R_q (glossary: "Delta").
func (p Parameters) Delta() int64 { return p.Q() / p.T }

// Equal reports whether p and other carry the same ring dimension,
// modulus, plaintext modulus, root of unity and noise parameter, in the
// style of the teacher's Parameters.Equal (core/rlwe/params.go), which
// compares field-by-field with cmp.Equal rather than reflect.DeepEqual.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.Ring, other.Ring) &&
		cmp.Equal(p.T, other.T) &&
		cmp.Equal(p.Omega, other.Omega) &&
		cmp.Equal(p.Sigma, other.Sigma)
}
