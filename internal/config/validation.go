package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// maxPageCapacity bounds directory.page_capacity.
const maxPageCapacity = 4096

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := validateDirectory(&config.Directory); err != nil {
		return errors.Wrap(err, "directory config validation failed")
	}

	if _, err := config.Rules(); err != nil {
		return errors.Wrap(err, "ledger.amendments")
	}

	if err := config.Database.Validate(); err != nil {
		return errors.Wrap(err, "database config validation failed")
	}

	if config.Cache.Size < 0 {
		return errors.Newf("cache.size must be non-negative, got %d", config.Cache.Size)
	}

	if !strings.EqualFold(config.Log.Level, "NOOP") {
		if _, err := zapcore.ParseLevel(strings.ToLower(config.Log.Level)); err != nil {
			return errors.Wrapf(err, "invalid log.level %q", config.Log.Level)
		}
	}

	return nil
}

func validateDirectory(d *DirectoryConfig) error {
	if d.PageCapacity < 1 || d.PageCapacity > maxPageCapacity {
		return errors.Newf("page_capacity must be between 1 and %d, got %d", maxPageCapacity, d.PageCapacity)
	}
	if d.MaxPages == 0 {
		return errors.New("max_pages must be positive; enable fixDirectoryLimit to lift the limit")
	}
	return nil
}
