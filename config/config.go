// Package config holds the settings of the GCD server. Values come from the
// command line only.
package config

import (
	"time"

	validator "github.com/go-playground/validator/v10"
)

const (
	DefaultAddr            = "localhost:3000"
	DefaultMaxBodyBytes    = 1 << 20 // 1 MB
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 5 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	// Addr is the listener of the calculator.
	Addr string `validate:"required,hostname_port"`

	// MetricsAddr is the listener of the Prometheus endpoint. Empty
	// disables it.
	MetricsAddr string `validate:"omitempty,hostname_port,nefield=Addr"`

	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	MaxBodyBytes    int64         `validate:"gt=0"`
	Debug           bool
}

// Default returns the configuration used when no flag is set.
func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxBodyBytes:    DefaultMaxBodyBytes,
	}
}

func (c Config) Validate() error {
	return validate.Struct(c)
}
