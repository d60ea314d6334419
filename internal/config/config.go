package config

import (
	"github.com/LeJamon/xrpldir/internal/core/amendment"
	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/storage"
)

// Config represents the complete xrpldir configuration
type Config struct {
	Directory DirectoryConfig `toml:"directory" mapstructure:"directory"`
	Ledger    LedgerConfig    `toml:"ledger" mapstructure:"ledger"`
	Database  storage.Config  `toml:"database" mapstructure:"database"`
	Cache     CacheConfig     `toml:"cache" mapstructure:"cache"`
	Log       LogConfig       `toml:"log" mapstructure:"log"`

	configPath string
}

// DirectoryConfig represents the [directory] section
type DirectoryConfig struct {
	// PageCapacity is the number of entries one directory page holds.
	PageCapacity int `toml:"page_capacity" mapstructure:"page_capacity"`
	// MaxPages is the page limit of one directory while fixDirectoryLimit
	// is not enabled.
	MaxPages uint64 `toml:"max_pages" mapstructure:"max_pages"`
}

// LedgerConfig represents the [ledger] section
type LedgerConfig struct {
	// Amendments lists the enabled amendments by name.
	Amendments []string `toml:"amendments" mapstructure:"amendments"`
}

// CacheConfig represents the [cache] section
type CacheConfig struct {
	// Size is the number of ledger entries a view keeps in memory.
	Size int `toml:"size" mapstructure:"size"`
}

// LogConfig represents the [log] section
type LogConfig struct {
	Level string `toml:"level" mapstructure:"level"`
}

// ConfigPath returns the file the configuration was read from, if any.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Rules returns the amendment rules the configuration enables.
func (c *Config) Rules() (*amendment.Rules, error) {
	return amendment.RulesFromNames(c.Ledger.Amendments)
}

// DirectoryOptions returns the directory options for one operation under rules.
func (c *Config) DirectoryOptions(rules *amendment.Rules) directory.Options {
	return directory.OptionsFor(rules, c.Directory.PageCapacity, c.Directory.MaxPages)
}
