package crypto

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

var (
	// ErrMalformedSignature is returned for signatures that are not strict DER.
	ErrMalformedSignature = errors.New("malformed signature")
	// ErrHighS is returned for signatures whose S value is above half the
	// group order. Only the low-S encoding of a signature is accepted.
	ErrHighS = errors.New("signature S value is not low")
)

// ParseSignature parses a strict DER signature and rejects the high-S form,
// so every command signature has exactly one accepted encoding.
func ParseSignature(der []byte) (*ecdsa.Signature, error) {
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSignature, err)
	}
	s := sig.S()
	if s.IsOverHalfOrder() {
		return nil, ErrHighS
	}
	return sig, nil
}
