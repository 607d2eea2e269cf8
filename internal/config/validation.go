package config

import (
	"fmt"
	"slices"

	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/storage/database/backend"
	"github.com/LeJamon/goSkwizz/internal/storage/journal"
	"github.com/rs/zerolog"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.Economy.Validate(); err != nil {
		return fmt.Errorf("economy validation failed: %w", err)
	}
	if err := config.Vesting.Validate(); err != nil {
		return fmt.Errorf("vesting validation failed: %w", err)
	}
	if err := config.Storage.Validate(); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}
	if err := config.Journal.Validate(); err != nil {
		return fmt.Errorf("journal validation failed: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}

	// Cross-validation checks
	if _, err := config.Params(); err != nil {
		return fmt.Errorf("cross-validation failed: %w", err)
	}

	return nil
}

// Validate performs validation on the economy section
func (e *EconomyConfig) Validate() error {
	if _, err := state.ParseVariant(e.Variant); err != nil {
		return err
	}

	// A divisor of 0 divides by zero and 1 confiscates the whole flow
	if e.DividendFee < 2 {
		return fmt.Errorf("dividend_fee must be at least 2, got %d", e.DividendFee)
	}
	if e.TokenIncrementalPrice == 0 {
		return fmt.Errorf("token_incremental_price must be positive")
	}
	if e.TokenInitialPrice <= e.TokenIncrementalPrice {
		return fmt.Errorf("token_initial_price (%d) must be greater than token_incremental_price (%d)",
			e.TokenInitialPrice, e.TokenIncrementalPrice)
	}
	if e.MagnitudeBits < 1 || e.MagnitudeBits > 63 {
		return fmt.Errorf("magnitude_bits must be between 1 and 63, got %d", e.MagnitudeBits)
	}
	if e.Decimals > 18 {
		return fmt.Errorf("decimals must be between 0 and 18, got %d", e.Decimals)
	}

	return nil
}

// Validate performs validation on the vesting section
func (v *VestingConfig) Validate() error {
	if v.Delay < 0 {
		return fmt.Errorf("delay must be non-negative, got %s", v.Delay)
	}
	if v.Enabled && v.Duration <= 0 {
		return fmt.Errorf("duration must be positive when vesting is enabled, got %s", v.Duration)
	}
	return nil
}

// Validate performs validation on the storage section
func (s *StorageConfig) Validate() error {
	if !slices.Contains(backend.Names, s.Backend) {
		return fmt.Errorf("invalid storage backend: %s (valid options: %v)", s.Backend, backend.Names)
	}
	if s.Backend != backend.Memory && s.Path == "" {
		return fmt.Errorf("storage path is required for backend %s", s.Backend)
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", s.CacheSize)
	}
	return nil
}

// Validate performs validation on the journal section
func (j *JournalConfig) Validate() error {
	switch j.Driver {
	case journal.DriverNone:
		return nil
	case journal.DriverSQLite, journal.DriverPostgres:
	default:
		return fmt.Errorf("invalid journal driver: %s (valid options: sqlite, postgres, none)", j.Driver)
	}

	if j.DSN == "" {
		return fmt.Errorf("dsn is required for journal driver %s", j.Driver)
	}
	if j.Buffer < 0 {
		return fmt.Errorf("buffer must be non-negative, got %d", j.Buffer)
	}
	return nil
}

// Validate performs validation on the log section
func (l *LogConfig) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if l.Format != "plain" && l.Format != "json" {
		return fmt.Errorf("invalid log format: %s (valid options: plain, json)", l.Format)
	}
	return nil
}
