package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the user-tunable defaults for a rename session. Values come
// from ~/.renamr/config.yaml when present, overridden by RENAMR_* environment
// variables.
type Settings struct {
	Match         string `mapstructure:"match"`
	Rename        string `mapstructure:"rename"`
	Replace       string `mapstructure:"replace"`
	ShowUnchanged bool   `mapstructure:"show_unchanged"`
	PreviewLimit  int    `mapstructure:"preview_limit"`
}

// DefaultSettings returns the built-in defaults used when no config file or
// environment overrides exist.
func DefaultSettings() Settings {
	return Settings{
		Match:         `.*\.jpeg$`,
		Rename:        `(jpeg)`,
		Replace:       "jpg",
		ShowUnchanged: true,
		PreviewLimit:  10,
	}
}

// LoadSettings reads settings from the data dir config file and environment.
// A missing config file is not an error; defaults apply.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	d, err := DataDir()
	if err != nil {
		return Settings{}, err
	}
	v.AddConfigPath(d)

	v.SetEnvPrefix("RENAMR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)

	def := DefaultSettings()
	v.SetDefault("match", def.Match)
	v.SetDefault("rename", def.Rename)
	v.SetDefault("replace", def.Replace)
	v.SetDefault("show_unchanged", def.ShowUnchanged)
	v.SetDefault("preview_limit", def.PreviewLimit)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if s.PreviewLimit <= 0 {
		s.PreviewLimit = def.PreviewLimit
	}
	return s, nil
}
