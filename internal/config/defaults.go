package config

import (
	"github.com/spf13/viper"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/storage"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("directory.page_capacity", directory.DefaultCapacity)
	v.SetDefault("directory.max_pages", directory.DefaultMaxPages)

	v.SetDefault("ledger.amendments", []string{"SortedDirectories"})

	db := storage.DefaultConfig()
	v.SetDefault("database.backend", db.Backend)
	v.SetDefault("database.path", db.Path)
	v.SetDefault("database.compression", db.Compression)
	v.SetDefault("database.sync", db.Sync)

	v.SetDefault("cache.size", view.DefaultCacheSize)

	v.SetDefault("log.level", "info")
}
