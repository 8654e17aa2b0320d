package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3, cfg.MaxLogins)
	assert.False(t, cfg.Metrics)
	assert.True(t, cfg.GST.Equal(decimal.RequireFromString("0.10")))
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("CARTDESK_MAX_LOGINS", "5")
	t.Setenv("CARTDESK_GST_RATE", "0.15")
	t.Setenv("CARTDESK_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MaxLogins)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.GST.Equal(decimal.RequireFromString("0.15")))
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"zero max logins": {"CARTDESK_MAX_LOGINS": "0"},
		"bad rate":        {"CARTDESK_GST_RATE": "ten percent"},
		"negative rate":   {"CARTDESK_GST_RATE": "-0.1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New())
			require.Error(t, err)
		})
	}
}

func TestLoad_OverrideWins(t *testing.T) {
	t.Setenv("CARTDESK_MAX_LOGINS", "5")

	v := viper.New()
	v.Set("MAX_LOGINS", 7)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxLogins)
}
