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
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "http://localhost"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags and subcommands ignored",
			args:         []string{"whoami", "-x", "1", "--y=2"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept as-is",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag takes no value",
			args:         []string{"-c", "-a", "x"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-a", "http://x", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigFileFlag([]string{"-config=c.json"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"whoami"}))
}

func TestEnvFileFlag(t *testing.T) {
	assert.Equal(t, "dev.env", EnvFileFlag([]string{"-e", "dev.env", "-c", "a.json"}))
	assert.Equal(t, "", EnvFileFlag(nil))
}
