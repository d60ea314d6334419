// Package storage opens the ordered key-value store that backs ledger views.
package storage

import (
	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/storage/database"
	"github.com/LeJamon/xrpldir/internal/storage/database/compression"
	"github.com/LeJamon/xrpldir/internal/storage/database/leveldb"
	"github.com/LeJamon/xrpldir/internal/storage/database/pebble"
)

const (
	BackendPebble  = "pebble"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

// Config selects and tunes the database backend.
type Config struct {
	Backend     string `mapstructure:"backend"`
	Path        string `mapstructure:"path"`
	Compression string `mapstructure:"compression"`
	Sync        bool   `mapstructure:"sync"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:     BackendPebble,
		Path:        "./xrpldir-db",
		Compression: "lz4",
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendPebble, BackendLevelDB:
		if c.Path == "" {
			return errors.Newf("database.path is required for the %s backend", c.Backend)
		}
	case BackendMemory:
	default:
		return errors.Newf("unknown database backend %q (want %s, %s or %s)",
			c.Backend, BackendPebble, BackendLevelDB, BackendMemory)
	}

	if _, err := compression.Get(c.Compression); err != nil {
		return errors.Wrapf(err, "database.compression must be one of %v", compression.Available())
	}
	return nil
}

// Open opens the database described by cfg.
func Open(cfg Config) (database.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c, err := compression.Get(cfg.Compression)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case BackendPebble:
		return pebble.Open(cfg.Path, pebble.Options{Compressor: c, Sync: cfg.Sync})
	case BackendLevelDB:
		return leveldb.Open(cfg.Path, leveldb.Options{Compressor: c, Sync: cfg.Sync})
	default:
		return pebble.OpenMemory(pebble.Options{Compressor: c})
	}
}
