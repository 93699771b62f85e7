package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-t", "tok", "-a", "http://sat:10100"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t", "tok"},
		},
		{
			name:         "equals form",
			args:         []string{"-a=http://sat:10100/api", "-t", "tok"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a=http://sat:10100/api"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-r", "5", "-x", "1", "-a", "http://sat"},
			allowedFlags: []string{"-a", "-r"},
			want:         []string{"-r", "5", "-a", "http://sat"},
		},
		{
			name:         "unknown flags and positionals dropped",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-t", "-l", "debug"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-t"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJSONConfigFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "console.json", "-t", "tok"}, want: "console.json"},
		{name: "long", args: []string{"-a", "http://sat", "-config", "alt.json"}, want: "alt.json"},
		{name: "long with equals", args: []string{"--config=eq.json"}, want: "eq.json"},
		{name: "absent", args: []string{"-a", "http://sat"}, want: ""},
		{name: "no args", args: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JSONConfigFlag(tt.args))
		})
	}
}
