package ack

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type builderConfig struct {
	logger          zerolog.Logger
	timeFunc        func() time.Time
	controlNumberFn func() string
}

func defaultConfig() builderConfig {
	cfg := builderConfig{logger: zerolog.Nop(), timeFunc: time.Now}
	cfg.controlNumberFn = func() string {
		return fmt.Sprintf("%09d", cfg.timeFunc().UnixNano()%1_000_000_000)
	}
	return cfg
}

// Option configures a Builder at construction time.
type Option func(*builderConfig)

// WithLogger attaches a logger the Builder writes acknowledgment
// construction diagnostics (the acknowledgment code and its note) to. Without this option the Builder logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *builderConfig) {
		c.logger = logger
	}
}

// WithTimeFunc overrides the clock used for ISA/GS date-time stamps and
// the default control-number generator, for deterministic tests.
func WithTimeFunc(fn func() time.Time) Option {
	return func(c *builderConfig) {
		c.timeFunc = fn
	}
}

// WithControlNumberFunc overrides how interchange/group/transaction-set
// control numbers are generated for the acknowledgment envelope.
func WithControlNumberFunc(fn func() string) Option {
	return func(c *builderConfig) {
		c.controlNumberFn = fn
	}
}
