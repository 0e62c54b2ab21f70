package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet() *Set {
	s := NewSet("test")
	s.String("c", "", "")
	s.String("config", "", "")
	s.Int("p", 0, "")
	s.Bool("v", false, "")
	return s
}

func TestSet_Filter(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "short flag with separate value",
			args: []string{"-c", "conf.json", "-a", "http://localhost"},
			want: []string{"-c", "conf.json"},
		},
		{
			name: "long flag with equals",
			args: []string{"--config=alt.json", "-a", "localhost"},
			want: []string{"--config=alt.json"},
		},
		{
			name: "double dash separate value",
			args: []string{"--config", "alt.json"},
			want: []string{"--config", "alt.json"},
		},
		{
			name: "unknown flags and positionals dropped",
			args: []string{"-x", "1", "--y=2", "positional", "-", "--"},
			want: []string{},
		},
		{
			name: "flag without value at end is kept as-is",
			args: []string{"-c"},
			want: []string{"-c"},
		},
		{
			name: "next dash-starting token is not a value",
			args: []string{"-c", "--config=alt.json"},
			want: []string{"-c", "--config=alt.json"},
		},
		{
			name: "bool flag does not swallow the next argument",
			args: []string{"-v", "positional", "-p", "20"},
			want: []string{"-v", "-p", "20"},
		},
		{
			name: "repeated flag preserved in order",
			args: []string{"-c", "one.json", "-c", "two.json"},
			want: []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name: "empty args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestSet().Filter(tt.args))
		})
	}
}

func TestSet_ParseIgnoresForeignFlags(t *testing.T) {
	s := NewSet("catalog")
	page := s.Int("p", 12, "")
	verbose := s.Bool("v", false, "")

	require.NoError(t, s.Parse([]string{"-c", "conf.json", "-v", "-s", "memory", "-p", "20"}))
	assert.Equal(t, 20, *page)
	assert.True(t, *verbose)

	require.Error(t, s.Parse([]string{"-p", "abc"}))
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short -c with value", []string{"-c", "/path/short.json"}, "/path/short.json"},
		{"long -config with value", []string{"-config", "/path/long.json"}, "/path/long.json"},
		{"unknown flags are ignored", []string{"-x", "1", "-y", "2"}, ""},
		{"equals form among other flags", []string{"-s", "memory", "-config=/path/eq.json", "-p", "5"}, "/path/eq.json"},
		{"multiple flags, last wins", []string{"-c", "/path/1.json", "-config", "/path/2.json"}, "/path/2.json"},
		{"missing value", []string{"-c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
