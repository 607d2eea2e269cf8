package state

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HolderIDSize is the size of a holder identity in bytes.
const HolderIDSize = 20

// HolderID identifies a participant. It is derived from the participant's
// public key and doubles as the key of the participant's holder record.
type HolderID [HolderIDSize]byte

// ZeroHolderID is the unset identity. A holder record whose authority is the
// zero identity has not been claimed yet.
var ZeroHolderID HolderID

// IsZero reports whether the identity is unset.
func (id HolderID) IsZero() bool {
	return id == ZeroHolderID
}

func (id HolderID) String() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

// ParseHolderID parses a hex encoded holder identity.
func ParseHolderID(s string) (HolderID, error) {
	var id HolderID
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return id, fmt.Errorf("invalid holder id %q: %w", s, err)
	}
	if len(b) != HolderIDSize {
		return id, fmt.Errorf("invalid holder id %q: want %d bytes, got %d", s, HolderIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// HolderIDFromBytes converts a 20-byte slice into a HolderID.
// Returns the zero identity if the slice has the wrong length.
func HolderIDFromBytes(b []byte) HolderID {
	var id HolderID
	if len(b) == HolderIDSize {
		copy(id[:], b)
	}
	return id
}
