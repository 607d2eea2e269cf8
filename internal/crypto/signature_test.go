package crypto

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// derInteger encodes a big-endian scalar as a minimal DER INTEGER.
func derInteger(b []byte) []byte {
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}
	if b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	return append([]byte{0x02, byte(len(b))}, b...)
}

// highS re-encodes sig with S replaced by its negation.
func highS(t *testing.T, der []byte) []byte {
	t.Helper()
	sig, err := ecdsa.ParseDERSignature(der)
	require.NoError(t, err)
	r, s := sig.R(), sig.S()
	s.Negate()
	rb, sb := r.Bytes(), s.Bytes()
	body := append(derInteger(rb[:]), derInteger(sb[:])...)
	return append([]byte{0x30, byte(len(body))}, body...)
}

func TestParseSignature(t *testing.T) {
	id, err := NewIdentityFromSeed([]byte("dave-dave-dave-dave"))
	require.NoError(t, err)
	msg := []byte("sell:all")
	sig := id.Sign(msg)

	_, err = ParseSignature(sig)
	require.NoError(t, err)

	tests := []struct {
		name string
		der  []byte
		want error
	}{
		{"empty", nil, ErrMalformedSignature},
		{"sequence tag only", []byte{0x30}, ErrMalformedSignature},
		{"wrong sequence tag", append([]byte{0x31}, sig[1:]...), ErrMalformedSignature},
		{"wrong total length", append([]byte{0x30, sig[1] + 1}, sig[2:]...), ErrMalformedSignature},
		{"trailing byte", append(append([]byte{}, sig...), 0x00), ErrMalformedSignature},
		{"high s", highS(t, sig), ErrHighS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignature(tt.der)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.False(t, Verify(id.PublicKey(), msg, highS(t, sig)))
}

func TestSecureErase(t *testing.T) {
	seed, err := RandomSeed()
	require.NoError(t, err)
	require.Len(t, seed, SeedSize)

	SecureErase(seed)
	assert.Equal(t, make([]byte, SeedSize), seed)

	SecureErase(nil)
}
