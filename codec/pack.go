// Package codec implements spec.md §4.6's byte-serialization format: keys
// and ciphertexts are packed as concatenated coefficient vectors encoded
// via a length-prefixed binary format, then base64, and a bitstream
// encoding maps UTF-8 strings to and from sequences of length-N
// bit-polynomials for the `_string` API of spec.md §6.
package codec

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
)

// MalformedEncoding is returned when base64 or binary decoding fails:
// truncated input, or a length prefix that does not match the remaining
// bytes (spec.md §7).
type MalformedEncoding struct {
	Reason string
}

func (e *MalformedEncoding) Error() string {
	return fmt.Sprintf("codec: malformed encoding: %s", e.Reason)
}

// DimensionMismatch is returned when a decoded coefficient vector's length
// is not a multiple of the expected block size — e.g. a ciphertext whose
// length is not a multiple of 2N, or a public key whose length is not
// exactly 2N (spec.md §7).
type DimensionMismatch struct {
	Got, Want int
}

func (e *DimensionMismatch) Error() string {
	return fmt.Sprintf("codec: dimension mismatch: got %d coefficients, want a multiple of %d", e.Got, e.Want)
}

// Pack serializes coeffs as a u64le length prefix followed by each
// coefficient as an i64le, then base64-encodes the result with the
// standard alphabet and padding (spec.md §4.6).
func Pack(coeffs []int64) string {
	buf := make([]byte, 8+8*len(coeffs))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(len(coeffs)))
	for i, c := range coeffs {
		binary.LittleEndian.PutUint64(buf[8+8*i:16+8*i], uint64(c))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// Unpack is the inverse of Pack: it base64-decodes s, reads the u64le
// length prefix, and decodes that many i64le coefficients.
func Unpack(s string) ([]int64, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &MalformedEncoding{Reason: "invalid base64: " + err.Error()}
	}
	if len(raw) < 8 {
		return nil, &MalformedEncoding{Reason: "truncated length prefix"}
	}
	n := binary.LittleEndian.Uint64(raw[0:8])
	want := 8 + 8*n
	if uint64(len(raw)) != want {
		return nil, &MalformedEncoding{Reason: fmt.Sprintf("length prefix says %d coefficients but payload has %d bytes", n, len(raw)-8)}
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(raw[8+8*i : 16+8*i]))
	}
	return out, nil
}
