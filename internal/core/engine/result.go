package engine

import (
	"errors"
	"fmt"
)

// Result is the stable code an operation outcome is reported with.
type Result int

// Result codes. tes is success, tec a rejected operation, tef an internal
// failure of the node.
const (
	TesSUCCESS Result = 0

	TecNOT_INITIALIZED     Result = 100
	TecALREADY_INITIALIZED Result = 101
	TecNO_PERMISSION       Result = 102
	TecNOT_ADMIN           Result = 103
	TecNOT_AMBASSADOR      Result = 104
	TecNO_TOKENS           Result = 105
	TecUNFUNDED            Result = 106
	TecBELOW_MINIMUM       Result = 107
	TecQUOTA_EXCEEDED      Result = 108
	TecWRONG_PHASE         Result = 109
	TecNO_DST              Result = 110

	TefINVARIANT_FAILED Result = -182
	TefFAILURE          Result = -199
)

var resultNames = map[Result]string{
	TesSUCCESS:             "tesSUCCESS",
	TecNOT_INITIALIZED:     "tecNOT_INITIALIZED",
	TecALREADY_INITIALIZED: "tecALREADY_INITIALIZED",
	TecNO_PERMISSION:       "tecNO_PERMISSION",
	TecNOT_ADMIN:           "tecNOT_ADMIN",
	TecNOT_AMBASSADOR:      "tecNOT_AMBASSADOR",
	TecNO_TOKENS:           "tecNO_TOKENS",
	TecUNFUNDED:            "tecUNFUNDED",
	TecBELOW_MINIMUM:       "tecBELOW_MINIMUM",
	TecQUOTA_EXCEEDED:      "tecQUOTA_EXCEEDED",
	TecWRONG_PHASE:         "tecWRONG_PHASE",
	TecNO_DST:              "tecNO_DST",
	TefINVARIANT_FAILED:    "tefINVARIANT_FAILED",
	TefFAILURE:             "tefFAILURE",
}

var resultMessages = map[Result]string{
	TesSUCCESS:             "The operation was applied.",
	TecNOT_INITIALIZED:     "The economy has not been initialized.",
	TecALREADY_INITIALIZED: "The economy is already initialized.",
	TecNO_PERMISSION:       "The caller does not own the holder record.",
	TecNOT_ADMIN:           "The caller is not an administrator.",
	TecNOT_AMBASSADOR:      "Only ambassadors may buy during bootstrap.",
	TecNO_TOKENS:           "The caller holds no tokens.",
	TecUNFUNDED:            "Insufficient currency or tokens.",
	TecBELOW_MINIMUM:       "The amount buys no tokens.",
	TecQUOTA_EXCEEDED:      "The bootstrap quota would be exceeded.",
	TecWRONG_PHASE:         "Not allowed in the current phase.",
	TecNO_DST:              "The recipient record belongs to another identity.",
	TefINVARIANT_FAILED:    "A ledger invariant would be violated.",
	TefFAILURE:             "The node failed to apply the operation.",
}

// String returns the string representation of the result code
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Message returns a human-readable message for the result code
func (r Result) Message() string {
	if msg, ok := resultMessages[r]; ok {
		return msg
	}
	return "Unknown result."
}

// IsSuccess returns true if the result indicates success
func (r Result) IsSuccess() bool {
	return r == TesSUCCESS
}

// IsTec returns true if the operation was rejected by a precondition
func (r Result) IsTec() bool {
	return r >= 100 && r < 200
}

var errorResults = []struct {
	err    error
	result Result
}{
	{ErrNotInitialized, TecNOT_INITIALIZED},
	{ErrAlreadyInitialized, TecALREADY_INITIALIZED},
	{ErrNotOwner, TecNO_PERMISSION},
	{ErrNotAdmin, TecNOT_ADMIN},
	{ErrNotAmbassador, TecNOT_AMBASSADOR},
	{ErrNotABagHolder, TecNO_TOKENS},
	{ErrInsufficientFunds, TecUNFUNDED},
	{ErrBelowMinimumPurchase, TecBELOW_MINIMUM},
	{ErrQuotaExceeded, TecQUOTA_EXCEEDED},
	{ErrWrongPhase, TecWRONG_PHASE},
	{ErrRecipientMismatch, TecNO_DST},
	{ErrInvariantViolated, TefINVARIANT_FAILED},
}

// ResultOf maps an operation error to its result code.
func ResultOf(err error) Result {
	if err == nil {
		return TesSUCCESS
	}
	for _, er := range errorResults {
		if errors.Is(err, er.err) {
			return er.result
		}
	}
	return TefFAILURE
}
