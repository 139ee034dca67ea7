package validate

import "github.com/rs/zerolog"

// validatorConfig holds Validator construction tunables.
type validatorConfig struct {
	logger zerolog.Logger
}

func defaultConfig() validatorConfig {
	return validatorConfig{logger: zerolog.Nop()}
}

// Option configures a Validator at construction time.
type Option func(*validatorConfig)

// WithLogger attaches a logger the Validator writes per-run diagnostics
// to. Without this option the Validator logs nothing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *validatorConfig) {
		c.logger = logger
	}
}
