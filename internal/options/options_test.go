package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-interp/internal/options"
)

type config struct {
	limit  int
	name   string
	strict bool
}

func defaults() config {
	return config{limit: 16, name: "default", strict: false}
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor options.OptionConstructor[config]
		callbacks   []options.OptionCallback[config]
		expected    config
	}{
		{
			name:        "nil constructor and no callbacks",
			constructor: nil,
			callbacks:   nil,
			expected:    config{},
		},
		{
			name:        "defaults only",
			constructor: defaults,
			callbacks:   nil,
			expected:    config{limit: 16, name: "default", strict: false},
		},
		{
			name:        "callback overrides default",
			constructor: defaults,
			callbacks: []options.OptionCallback[config]{
				func(c *config) { c.strict = true },
			},
			expected: config{limit: 16, name: "default", strict: true},
		},
		{
			name:        "callbacks applied in order",
			constructor: defaults,
			callbacks: []options.OptionCallback[config]{
				func(c *config) { c.limit *= 2 },
				func(c *config) { c.limit++ },
			},
			expected: config{limit: 33, name: "default", strict: false},
		},
		{
			name:        "nil callbacks are skipped",
			constructor: defaults,
			callbacks: []options.OptionCallback[config]{
				nil,
				func(c *config) { c.name = "set" },
				nil,
			},
			expected: config{limit: 16, name: "set", strict: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.ApplyOptions(tt.constructor, tt.callbacks))
		})
	}
}

