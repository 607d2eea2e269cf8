package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Result
	}{
		{"nil", nil, TesSUCCESS},
		{"wrapped owner", fmt.Errorf("buy: %w", ErrNotOwner), TecNO_PERMISSION},
		{"gate phase", fmt.Errorf("sell: %w", ErrWrongPhase), TecWRONG_PHASE},
		{"funds", fmt.Errorf("%w: wallet holds 1", ErrInsufficientFunds), TecUNFUNDED},
		{"recipient", ErrRecipientMismatch, TecNO_DST},
		{"invariant", fmt.Errorf("%w: negative", ErrInvariantViolated), TefINVARIANT_FAILED},
		{"collaborator", errors.New("disk full"), TefFAILURE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultOf(tt.err))
		})
	}
}

func TestResultStrings(t *testing.T) {
	assert.Equal(t, "tecNO_DST", TecNO_DST.String())
	assert.Equal(t, "Result(42)", Result(42).String())
	assert.Equal(t, "Unknown result.", Result(42).Message())

	assert.True(t, TesSUCCESS.IsSuccess())
	assert.True(t, TecWRONG_PHASE.IsTec())
	assert.False(t, TefFAILURE.IsTec())
	assert.False(t, TefINVARIANT_FAILED.IsSuccess())
}
