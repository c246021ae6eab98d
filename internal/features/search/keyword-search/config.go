package keywordsearch

import "college-portal/internal/common/collation"

type Config struct {
	// Locale drives the name sort.
	Locale string `mapstructure:"locale"`
}

func DefaultConfig() *Config {
	return &Config{Locale: collation.DefaultLocale}
}
