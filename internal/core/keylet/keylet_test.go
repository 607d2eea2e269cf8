package keylet

import (
	"bytes"
	"testing"

	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/stretchr/testify/assert"
)

func TestKeyletsAreDistinct(t *testing.T) {
	id := state.HolderID{7}
	keys := []Keylet{Economy(), Holder(id), Wallet(id), Token(id), Mint(), Custody(), Metadata()}

	seen := make(map[[32]byte]bool)
	for _, k := range keys {
		assert.False(t, seen[k.Key], "duplicate key for type %c", k.Type)
		seen[k.Key] = true
	}
}

func TestHolderKeyDependsOnID(t *testing.T) {
	assert.NotEqual(t, Holder(state.HolderID{1}).Key, Holder(state.HolderID{2}).Key)
	assert.Equal(t, Holder(state.HolderID{1}).Key, Holder(state.HolderID{1}).Key)
}

func TestRangeCoversType(t *testing.T) {
	start, end := Range(TypeHolder)
	k := Holder(state.HolderID{3}).Bytes()

	assert.Len(t, k, 33)
	assert.True(t, bytes.Compare(k, start) >= 0)
	assert.True(t, bytes.Compare(k, end) < 0)

	w := Wallet(state.HolderID{3}).Bytes()
	assert.False(t, bytes.Compare(w, start) >= 0 && bytes.Compare(w, end) < 0)
}
