package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const envPrefix = "CARTDESK"

// Config is read from CARTDESK_* environment variables; flags bound into the
// same viper instance take precedence.
type Config struct {
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	MaxLogins int    `mapstructure:"MAX_LOGINS"`
	GSTRate   string `mapstructure:"GST_RATE"`
	Metrics   bool   `mapstructure:"METRICS"`

	GST decimal.Decimal `mapstructure:"-"`
}

func SetDefaults(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_LOGINS", 3)
	v.SetDefault("GST_RATE", "0.10")
	v.SetDefault("METRICS", false)
}

func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.MaxLogins <= 0 {
		return nil, fmt.Errorf("MAX_LOGINS must be positive, got %d", cfg.MaxLogins)
	}

	rate, err := decimal.NewFromString(cfg.GSTRate)
	if err != nil {
		return nil, fmt.Errorf("GST_RATE %q: %w", cfg.GSTRate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("GST_RATE must be positive, got %s", rate)
	}
	cfg.GST = rate

	return cfg, nil
}
