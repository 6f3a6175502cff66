package codec

import "github.com/latticeforge/ringlwe/ring"

// StringToBlocks splits s's UTF-8 bytes into MSB-first bits and chunks them
// into plaintext polynomials of exactly n coefficients, each coefficient a
// bit (0 or 1), per spec.md §4.6 ("String -> plaintext blocks"). The final
// block may hold fewer than n bits; it is not zero-padded in the returned
// Poly's coefficient count — callers that need a fixed-width block (e.g.
// before encryption) pad via Resize.
func StringToBlocks(s string, n int) []ring.Poly {
	bits := make([]int64, 0, 8*len(s))
	for _, b := range []byte(s) {
		for i := 7; i >= 0; i-- {
			bits = append(bits, int64((b>>uint(i))&1))
		}
	}
	if len(bits) == 0 {
		return nil
	}
	var blocks []ring.Poly
	for off := 0; off < len(bits); off += n {
		end := off + n
		if end > len(bits) {
			end = len(bits)
		}
		blocks = append(blocks, ring.NewPolyFromCoeffs(bits[off:end]))
	}
	return blocks
}

// BlocksToString is the inverse of StringToBlocks: it concatenates each
// block's coefficients (zero-extended to n bits, since a decrypted block
// that ended the message may report fewer meaningful bits than it was
// encrypted with is not distinguishable from one padded with zero bits),
// regroups the bitstream into bytes of 8 MSB-first bits, and trims trailing
// NUL bytes.
//
// Trailing NUL trimming is a documented limitation (spec.md §9): a message
// that legitimately ends in NUL bytes is indistinguishable from padding and
// those bytes are lost on round-trip. This is preserved as specified, not
// corrected, since fixing it would change the wire format.
func BlocksToString(blocks []ring.Poly, n int) string {
	bits := make([]int64, 0, n*len(blocks))
	for _, b := range blocks {
		padded := b.Resize(n)
		bits = append(bits, padded.Coeffs...)
	}

	nBytes := len(bits) / 8
	out := make([]byte, nBytes)
	for i := 0; i < nBytes; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b = (b << 1) | byte(bits[8*i+j]&1)
		}
		out[i] = b
	}

	end := len(out)
	for end > 0 && out[end-1] == 0 {
		end--
	}
	return string(out[:end])
}
