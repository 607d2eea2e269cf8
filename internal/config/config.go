package config

import (
	"path/filepath"
	"time"
)

// Config represents the complete skwizzd configuration
type Config struct {
	// 1. Economy launch parameters, applied once at initialization
	Economy EconomyConfig `toml:"economy" mapstructure:"economy"`

	// 2. Vesting of distributed tokens
	Vesting VestingConfig `toml:"vesting" mapstructure:"vesting"`

	// 3. Record database
	Storage StorageConfig `toml:"storage" mapstructure:"storage"`

	// 4. Event journal
	Journal JournalConfig `toml:"journal" mapstructure:"journal"`

	// 5. Logging
	Log LogConfig `toml:"log" mapstructure:"log"`

	// Internal fields for configuration management
	configPath string `toml:"-" mapstructure:"-"`
}

// EconomyConfig represents the [economy] section.
// Amounts are in base units.
type EconomyConfig struct {
	Variant               string `toml:"variant" mapstructure:"variant"`
	DividendFee           uint8  `toml:"dividend_fee" mapstructure:"dividend_fee"`
	TokenInitialPrice     uint64 `toml:"token_initial_price" mapstructure:"token_initial_price"`
	TokenIncrementalPrice uint64 `toml:"token_incremental_price" mapstructure:"token_incremental_price"`
	MagnitudeBits         uint8  `toml:"magnitude_bits" mapstructure:"magnitude_bits"`
	StakingRequirement    uint64 `toml:"staking_requirement" mapstructure:"staking_requirement"`
	AmbassadorMaxPurchase uint64 `toml:"ambassador_max_purchase" mapstructure:"ambassador_max_purchase"`
	AmbassadorQuota       uint64 `toml:"ambassador_quota" mapstructure:"ambassador_quota"`
	Decimals              uint8  `toml:"decimals" mapstructure:"decimals"`
	MetadataURI           string `toml:"metadata_uri" mapstructure:"metadata_uri"`
}

// VestingConfig represents the [vesting] section
type VestingConfig struct {
	Enabled  bool          `toml:"enabled" mapstructure:"enabled"`
	Delay    time.Duration `toml:"delay" mapstructure:"delay"`
	Duration time.Duration `toml:"duration" mapstructure:"duration"`
}

// StorageConfig represents the [storage] section
type StorageConfig struct {
	Backend string `toml:"backend" mapstructure:"backend"`
	Path    string `toml:"path" mapstructure:"path"`
	// CacheSize is the number of holder records kept in memory.
	CacheSize int `toml:"cache_size" mapstructure:"cache_size"`
}

// JournalConfig represents the [journal] section
type JournalConfig struct {
	Driver string `toml:"driver" mapstructure:"driver"`
	DSN    string `toml:"dsn" mapstructure:"dsn"`
	Buffer int    `toml:"buffer" mapstructure:"buffer"`
}

// Enabled reports whether events are journaled.
func (j JournalConfig) Enabled() bool {
	return j.Driver != "none"
}

// LogConfig represents the [log] section
type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

// JSON reports whether log lines are written as JSON.
func (l LogConfig) JSON() bool {
	return l.Format == "json"
}

// DefaultConfigPath is where LoadDefaultConfig looks for a config file.
const DefaultConfigPath = "skwizzd.toml"

// ConfigPathFromDir returns the config file path inside configDir
func ConfigPathFromDir(configDir string) string {
	return filepath.Join(configDir, DefaultConfigPath)
}

// GetConfigPath returns the path of the loaded configuration file, or ""
// when only defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// DatabasePath returns the directory holding the node databases.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.Path, "db")
}
