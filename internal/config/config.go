package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config holds process-level settings, read from the environment.
type Config struct {
	Environment  string `mapstructure:"environment"`
	HTTPAddr     string `mapstructure:"http_addr"`
	DatabasePath string `mapstructure:"database_path"`
	ExportDir    string `mapstructure:"export_dir"`
	CurrencyURL  string `mapstructure:"currency_url"`
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEPRO")
	v.AutomaticEnv()

	v.SetDefault("environment", "development")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database_path", "invoicepro.db")
	v.SetDefault("export_dir", "exports")
	v.SetDefault("currency_url", "https://api.frankfurter.app/currencies")

	for _, key := range []string{"environment", "http_addr", "database_path", "export_dir", "currency_url"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
