package crypto

import (
	"bytes"

	"github.com/LeJamon/goSkwizz/internal/core/engine"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// SignatureVerifier accepts a signer when its public key hashes to the
// holder identity, its message is the OperationMessage of s.Op for that
// identity, and its signature over the message verifies.
type SignatureVerifier struct{}

// Controls implements engine.Verifier.
func (SignatureVerifier) Controls(s engine.Signer, id state.HolderID) bool {
	if s.Op == "" || len(s.PublicKey) == 0 || CalcHolderID(s.PublicKey) != id {
		return false
	}
	if !bytes.Equal(s.Message, OperationMessage(s.Op, id)) {
		return false
	}
	return Verify(s.PublicKey, s.Message, s.Signature)
}

// Signer signs message with the identity and returns the engine caller.
func (i *Identity) Signer(message []byte) engine.Signer {
	return engine.Signer{
		ID:        i.HolderID(),
		PublicKey: i.PublicKey(),
		Message:   message,
		Signature: i.Sign(message),
	}
}

// SignOperation signs the canonical message of the operation named op.
func (i *Identity) SignOperation(op string) engine.Signer {
	s := i.Signer(OperationMessage(op, i.HolderID()))
	s.Op = op
	return s
}

// OperationMessage is the payload a holder signs to authorize op.
func OperationMessage(op string, id state.HolderID) []byte {
	return []byte(op + ":" + id.String())
}
