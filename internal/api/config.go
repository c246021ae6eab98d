package api

import (
	"time"

	"college-portal/internal/common/collation"
	apphttp "college-portal/internal/common/http"
)

type Config struct {
	// Locale drives collated sorting in list views.
	Locale       string
	MaxBodyBytes int64
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Locale:       collation.DefaultLocale,
		MaxBodyBytes: apphttp.DefaultMaxBodyBytes,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}
