package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"runtime"
)

// SeedSize is the size of a generated identity seed.
const SeedSize = 16

// ErrRandomGeneration is returned when the system random source fails.
var ErrRandomGeneration = errors.New("failed to generate random bytes")

// RandomSeed returns a fresh seed for NewIdentityFromSeed.
func RandomSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, ErrRandomGeneration
	}
	return seed, nil
}

// SecureErase zeroes key material once it is no longer needed.
func SecureErase(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
