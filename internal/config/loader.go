package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override configuration,
// e.g. XRPLDIR_DIRECTORY_PAGE_CAPACITY.
const EnvPrefix = "XRPLDIR"

// LoadConfig loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (xrpldir.toml), when path is not empty
// 3. Environment variables (XRPLDIR_ prefix)
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	config.configPath = path

	if err := ValidateConfig(&config); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &config, nil
}

// loadConfigFile reads the configuration file into v
func loadConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.Newf("config file does not exist: %s", path)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	return nil
}
