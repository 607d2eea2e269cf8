package crypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// CalcHolderID computes the holder identity of a public key as
// RIPEMD160(SHA256(publicKey)). The whole serialized key is hashed.
func CalcHolderID(publicKey []byte) state.HolderID {
	sha256Hash := sha256.Sum256(publicKey)

	ripemd160Hasher := ripemd160.New()
	ripemd160Hasher.Write(sha256Hash[:])

	return state.HolderIDFromBytes(ripemd160Hasher.Sum(nil))
}

// Sha512Half returns the first 32 bytes of the SHA-512 hash of the
// concatenated inputs.
func Sha512Half(data ...[]byte) [32]byte {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	var result [32]byte
	copy(result[:], h.Sum(nil)[:32])
	return result
}
