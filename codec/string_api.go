package codec

import (
	"github.com/latticeforge/ringlwe/ring"
	"github.com/latticeforge/ringlwe/rlwe"
	"github.com/latticeforge/ringlwe/utils/sampling"
)

// KeyGenString generates a (public key, secret key) pair under params and
// returns both packed as base64 strings, composing rlwe.NewKeyGenerator
// with PackPublicKey/PackSecretKey for the `_string` convenience API of
// spec.md §6.
func KeyGenString(params rlwe.Parameters, seed sampling.Seed) (pk, sk string, err error) {
	kg, err := rlwe.NewKeyGenerator(params, seed)
	if err != nil {
		return "", "", err
	}
	pub, priv, err := kg.GenKeyPair()
	if err != nil {
		return "", "", err
	}
	return PackPublicKey(pub, params.N()), PackSecretKey(priv, params.N()), nil
}

// EncryptString encrypts s under the packed public key pkStr, chunking it
// into plaintext blocks via StringToBlocks and encrypting each block
// independently (spec.md §6, "encrypt_string"). The result is a single
// packed string holding all resulting ciphertext blocks concatenated, via
// PackCiphertexts.
func EncryptString(params rlwe.Parameters, pkStr string, s string, seed sampling.Seed) (string, error) {
	pk, err := UnpackPublicKey(pkStr, params.N())
	if err != nil {
		return "", err
	}

	enc, err := rlwe.NewEncryptor(params, pk, seed)
	if err != nil {
		return "", err
	}

	blocks := StringToBlocks(s, params.N())
	cts := make([]rlwe.Ciphertext, len(blocks))
	for i, m := range blocks {
		ct, err := enc.EncryptNew(m)
		if err != nil {
			return "", err
		}
		cts[i] = ct
	}

	return PackCiphertexts(cts, params.N()), nil
}

// DecryptString is the inverse of EncryptString: it unpacks the ciphertext
// blocks, decrypts each under the packed secret key skStr, and reassembles
// the original string via BlocksToString (spec.md §6, "decrypt_string").
func DecryptString(params rlwe.Parameters, skStr string, ctStr string) (string, error) {
	sk, err := UnpackSecretKey(skStr, params.N())
	if err != nil {
		return "", err
	}
	cts, err := UnpackCiphertexts(ctStr, params.N())
	if err != nil {
		return "", err
	}

	dec := rlwe.NewDecryptor(params, sk)
	blocks := make([]ring.Poly, len(cts))
	for i, ct := range cts {
		blocks[i] = dec.DecryptNew(ct)
	}

	return BlocksToString(blocks, params.N()), nil
}
