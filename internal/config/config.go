package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/brewgator/sats-units/pkg/units"
)

const envPrefix = "SATS"

// Config holds settings shared by the sats binaries
type Config struct {
	Locale         language.Tag
	Host           string
	Port           string
	AllowedOrigins []string
	Debug          bool
}

// Load reads configuration from SATS_* environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("locale", "en")
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", "8080")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("debug", false)

	tag, err := units.ParseLocale(v.GetString("locale"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_LOCALE %q: %w", envPrefix, v.GetString("locale"), err)
	}

	return &Config{
		Locale:         tag,
		Host:           v.GetString("host"),
		Port:           v.GetString("port"),
		AllowedOrigins: splitList(v.GetString("allowed_origins")),
		Debug:          v.GetBool("debug"),
	}, nil
}

// Addr returns the host:port the API listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
