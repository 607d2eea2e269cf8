// Package vesting locks distributed tokens and releases them in ten equal
// steps across a time window.
package vesting

import (
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
)

// Steps is the number of equal releases across a window.
const Steps = 10

// Schedule stamps lock windows on grants.
type Schedule struct {
	Delay    time.Duration
	Duration time.Duration
}

// FromTerms returns the schedule configured on an economy.
func FromTerms(t state.VestingTerms) Schedule {
	return Schedule{Delay: t.Delay, Duration: t.Duration}
}

// Window returns the lock window of a grant made at now.
func (s Schedule) Window(now time.Time) (start, end time.Time) {
	start = now.Add(s.Delay)
	return start, start.Add(s.Duration)
}

// Usable returns how much of a lock is released at now.
func Usable(l state.Lock, now time.Time) sdkmath.Uint {
	if l.Total.IsZero() || !now.Before(l.End) {
		return l.Total
	}
	if now.Before(l.Start) {
		return sdkmath.ZeroUint()
	}
	interval := l.End.Sub(l.Start) / Steps
	if interval <= 0 {
		return l.Total
	}
	steps := uint64(now.Sub(l.Start) / interval)
	if steps >= Steps {
		return l.Total
	}
	return l.Total.MulUint64(steps).QuoUint64(Steps)
}

// Refresh brings h's released amount up to date.
func Refresh(h *state.Holder, now time.Time) {
	h.Lock.Usable = Usable(h.Lock, now)
}

// Spendable returns the part of h's balance that is not locked at now.
func Spendable(h *state.Holder, now time.Time) sdkmath.Uint {
	locked := h.Lock.Total.Sub(Usable(h.Lock, now))
	if h.Balance.LTE(locked) {
		return sdkmath.ZeroUint()
	}
	return h.Balance.Sub(locked)
}

// Grant locks amount more tokens on h. Whatever is already released stays
// released; the rest is locked again together with amount over a fresh
// window starting at now.
func (s Schedule) Grant(h *state.Holder, amount sdkmath.Uint, now time.Time) {
	released := Usable(h.Lock, now)
	start, end := s.Window(now)
	h.Lock = state.Lock{
		Total:  h.Lock.Total.Sub(released).Add(amount),
		Usable: sdkmath.ZeroUint(),
		Start:  start,
		End:    end,
	}
}
