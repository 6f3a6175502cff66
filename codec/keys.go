package codec

import (
	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/rlwe"
)

// PackSecretKey packs sk's N coefficients directly (spec.md §4.6,
// "Secret key").
func PackSecretKey(sk rlwe.SecretKey, n int) string {
	return Pack(sk.Value.Resize(n).Coeffs)
}

// UnpackSecretKey is the inverse of PackSecretKey. It returns
// DimensionMismatch if the decoded vector's length is not exactly n.
func UnpackSecretKey(s string, n int) (rlwe.SecretKey, error) {
	coeffs, err := Unpack(s)
	if err != nil {
		return rlwe.SecretKey{}, err
	}
	if len(coeffs) != n {
		return rlwe.SecretKey{}, &DimensionMismatch{Got: len(coeffs), Want: n}
	}
	return rlwe.SecretKey{Value: ring.NewPolyFromCoeffs(coeffs)}, nil
}

// PackPublicKey packs the concatenation of B's then A's N coefficients
// (length 2N), per spec.md §4.6 ("Public key").
func PackPublicKey(pk rlwe.PublicKey, n int) string {
	coeffs := make([]int64, 0, 2*n)
	coeffs = append(coeffs, pk.B.Resize(n).Coeffs...)
	coeffs = append(coeffs, pk.A.Resize(n).Coeffs...)
	return Pack(coeffs)
}

// UnpackPublicKey is the inverse of PackPublicKey. It returns
// DimensionMismatch if the decoded vector's length is not exactly 2N.
func UnpackPublicKey(s string, n int) (rlwe.PublicKey, error) {
	coeffs, err := Unpack(s)
	if err != nil {
		return rlwe.PublicKey{}, err
	}
	if len(coeffs) != 2*n {
		return rlwe.PublicKey{}, &DimensionMismatch{Got: len(coeffs), Want: 2 * n}
	}
	return rlwe.PublicKey{
		B: ring.NewPolyFromCoeffs(coeffs[:n]),
		A: ring.NewPolyFromCoeffs(coeffs[n:]),
	}, nil
}

// PackCiphertexts packs K ciphertext blocks as the concatenation of each
// block's C0 then C1 coefficients (length 2NK total), per spec.md §4.6
// ("Ciphertext encoding").
func PackCiphertexts(blocks []rlwe.Ciphertext, n int) string {
	coeffs := make([]int64, 0, 2*n*len(blocks))
	for _, ct := range blocks {
		coeffs = append(coeffs, ct.C0.Resize(n).Coeffs...)
		coeffs = append(coeffs, ct.C1.Resize(n).Coeffs...)
	}
	return Pack(coeffs)
}

// UnpackCiphertexts is the inverse of PackCiphertexts. It returns
// DimensionMismatch if the decoded vector's length is not a multiple of 2N.
func UnpackCiphertexts(s string, n int) ([]rlwe.Ciphertext, error) {
	coeffs, err := Unpack(s)
	if err != nil {
		return nil, err
	}
	blockSize := 2 * n
	if blockSize == 0 || len(coeffs)%blockSize != 0 {
		return nil, &DimensionMismatch{Got: len(coeffs), Want: blockSize}
	}
	k := len(coeffs) / blockSize
	blocks := make([]rlwe.Ciphertext, k)
	for i := 0; i < k; i++ {
		base := i * blockSize
		blocks[i] = rlwe.Ciphertext{
			C0: ring.NewPolyFromCoeffs(coeffs[base : base+n]),
			C1: ring.NewPolyFromCoeffs(coeffs[base+n : base+blockSize]),
		}
	}
	return blocks, nil
}
