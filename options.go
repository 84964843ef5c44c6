package interp

import (
	"github.com/rs/zerolog"

	"github.com/tarantool/go-interp/internal/options"
)

type fallbackOptions struct {
	strict bool
	logger zerolog.Logger
}

func defaultFallbackOptions() fallbackOptions {
	return fallbackOptions{
		strict: false,
		logger: zerolog.Nop(),
	}
}

// WithStrict makes LengthFallback reject a field that fails to parse instead
// of skipping it.
func WithStrict() options.OptionCallback[fallbackOptions] {
	return func(opts *fallbackOptions) {
		opts.strict = true
	}
}

// WithLogger sets the logger LengthFallback reports failed fields to.
// Events are logged at debug level.
func WithLogger(logger zerolog.Logger) options.OptionCallback[fallbackOptions] {
	return func(opts *fallbackOptions) {
		opts.logger = logger
	}
}
