package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://localhost/characters", "-s", "memory", "-d", "x.db", "-p", "20", "-l", "de"},
			expected: &Config{
				Endpoint:    "http://localhost/characters",
				Storage:     "memory",
				DatabaseDSN: "x.db",
				PageSize:    20,
				Locale:      "de",
			},
		},
		{
			name:     "verbose switches to debug logging",
			args:     []string{"cmd", "-v", "-c", "conf.json", "-p", "6"},
			expected: &Config{PageSize: 6, LogLevel: "debug"},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-x", "1", "-p", "6"},
			expected: &Config{PageSize: 6},
		},
		{name: "incorrect page size", args: []string{"cmd", "-p", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
