package cmd

import (
	"testing"

	"git-monthly/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_ShowDefaults(t *testing.T) {
	withTempHome(t)

	out, _, err := executeCommand(t, newSetCmd())
	require.NoError(t, err)
	assert.Equal(t, "email: (none)\nmonths: 0\nunscaled: false\nwidth: 20\n", out)
}

func TestSet_Email(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newSetCmd(), "email", " Me@Work.com, me@home.com ,me@work.com")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"me@work.com", "me@home.com"}, cfg.Emails)

	out, _, err := executeCommand(t, newSetCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "email: me@work.com,me@home.com\n")
}

func TestSet_Values(t *testing.T) {
	withTempHome(t)

	_, _, err := executeCommand(t, newSetCmd(), "months", "24")
	require.NoError(t, err)
	_, _, err = executeCommand(t, newSetCmd(), "unscaled", "true")
	require.NoError(t, err)
	_, _, err = executeCommand(t, newSetCmd(), "WIDTH", "40")
	require.NoError(t, err)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Months)
	assert.True(t, cfg.Unscaled)
	assert.Equal(t, 40, cfg.Width)
}

func TestSet_Invalid(t *testing.T) {
	withTempHome(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"months not a number", []string{"months", "many"}, "invalid months"},
		{"negative months", []string{"months", "--", "-2"}, "months must be >= 0"},
		{"unscaled not bool", []string{"unscaled", "maybe"}, "invalid unscaled"},
		{"width too large", []string{"width", "500"}, "width must be in"},
		{"bad email", []string{"email", "not-an-email"}, "invalid email"},
		{"unknown key", []string{"colour", "red"}, "unsupported key"},
		{"wrong arg count", []string{"months"}, "usage: git-monthly set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, newSetCmd(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	// 校验失败不应写入配置
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Months)
	assert.Equal(t, config.DefaultWidth, cfg.Width)
	assert.Empty(t, cfg.Emails)
}
