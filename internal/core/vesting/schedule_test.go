package vesting

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestUsableSteps(t *testing.T) {
	l := state.Lock{
		Total:  sdkmath.NewUint(1_000),
		Usable: sdkmath.ZeroUint(),
		Start:  epoch,
		End:    epoch.Add(100 * time.Hour),
	}

	tests := []struct {
		name string
		at   time.Duration
		want uint64
	}{
		{"before start", -time.Hour, 0},
		{"at start", 0, 0},
		{"inside first step", 9 * time.Hour, 0},
		{"first step", 10 * time.Hour, 100},
		{"between steps", 35 * time.Hour, 300},
		{"last step", 99 * time.Hour, 900},
		{"at end", 100 * time.Hour, 1_000},
		{"after end", 500 * time.Hour, 1_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, sdkmath.NewUint(tt.want).String(), Usable(l, epoch.Add(tt.at)).String())
		})
	}
}

func TestSpendable(t *testing.T) {
	s := Schedule{Duration: 10 * time.Hour}
	h := state.NewHolder(state.HolderID{1})
	h.Balance = sdkmath.NewUint(1_500)
	s.Grant(h, sdkmath.NewUint(1_000), epoch)

	assert.Equal(t, "500", Spendable(h, epoch).String())
	assert.Equal(t, "800", Spendable(h, epoch.Add(3*time.Hour)).String())
	assert.Equal(t, "1500", Spendable(h, epoch.Add(10*time.Hour)).String())

	Refresh(h, epoch.Add(5*time.Hour))
	assert.Equal(t, "500", h.Lock.Usable.String())
	assert.Equal(t, "500", h.Locked().String())
}

func TestGrantKeepsReleasedTokens(t *testing.T) {
	s := Schedule{Delay: time.Hour, Duration: 10 * time.Hour}
	h := state.NewHolder(state.HolderID{2})

	s.Grant(h, sdkmath.NewUint(1_000), epoch)
	assert.Equal(t, epoch.Add(time.Hour), h.Lock.Start)
	assert.Equal(t, epoch.Add(11*time.Hour), h.Lock.End)
	h.Balance = sdkmath.NewUint(1_000)

	// four steps in, 400 is released; the next grant relocks only the rest
	later := epoch.Add(5 * time.Hour)
	s.Grant(h, sdkmath.NewUint(200), later)
	h.Balance = h.Balance.Add(sdkmath.NewUint(200))

	assert.Equal(t, "800", h.Lock.Total.String())
	assert.Equal(t, "400", Spendable(h, later).String())
	assert.Equal(t, later.Add(time.Hour), h.Lock.Start)
}

func TestFromTerms(t *testing.T) {
	s := FromTerms(state.VestingTerms{Enabled: true, Delay: time.Minute, Duration: time.Hour})
	start, end := s.Window(epoch)
	assert.Equal(t, epoch.Add(time.Minute), start)
	assert.Equal(t, epoch.Add(61*time.Minute), end)
}
