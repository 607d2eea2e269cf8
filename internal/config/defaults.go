package config

import (
	"github.com/LeJamon/goSkwizz/internal/core/state"
	"github.com/LeJamon/goSkwizz/internal/storage/journal"
	"github.com/spf13/viper"
)

// setDefaults sets all default values, matching the launch parameters of
// the ambassador variant.
func setDefaults(v *viper.Viper) {
	// 1. Economy defaults
	v.SetDefault("economy.variant", state.VariantAmbassador.String())
	v.SetDefault("economy.dividend_fee", state.DefaultDividendFee)
	v.SetDefault("economy.token_initial_price", state.DefaultInitialPrice)
	v.SetDefault("economy.token_incremental_price", state.DefaultIncrementalPrice)
	v.SetDefault("economy.magnitude_bits", state.DefaultMagnitudeBits)
	v.SetDefault("economy.staking_requirement", uint64(state.DefaultStakingRequirement))
	v.SetDefault("economy.ambassador_max_purchase", uint64(state.DefaultAmbassadorMaxPurchase))
	v.SetDefault("economy.ambassador_quota", uint64(state.DefaultAmbassadorQuota))
	v.SetDefault("economy.decimals", state.DefaultDecimals)
	v.SetDefault("economy.metadata_uri", "")

	// 2. Vesting defaults
	v.SetDefault("vesting.enabled", false)
	v.SetDefault("vesting.delay", "0s")
	v.SetDefault("vesting.duration", state.DefaultVestingDuration.String())

	// 3. Storage defaults
	v.SetDefault("storage.backend", "pebble")
	v.SetDefault("storage.path", "./data")
	v.SetDefault("storage.cache_size", 4096)

	// 4. Journal defaults
	v.SetDefault("journal.driver", journal.DriverSQLite)
	v.SetDefault("journal.dsn", "./data/events.sqlite")
	v.SetDefault("journal.buffer", journal.DefaultBuffer)

	// 5. Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "plain")
}
