// Package config loads runtime settings from a YAML file, COLORPAD_*
// environment variables and flag overrides, using viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ironsheep/colorpad-mcp/internal/bridge"
	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. COLORPAD_GRAYSCALE.
const EnvPrefix = "COLORPAD"

// Keys understood by Load.
const (
	KeyLogLevel  = "log_level"
	KeyGrayscale = "grayscale"
	KeyBridge    = "bridge"
	KeyUpperHex  = "upper_hex"
)

// Config is the validated runtime configuration.
type Config struct {
	LogLevel  string         `json:"log_level" yaml:"log_level"`
	Grayscale string         `json:"grayscale" yaml:"grayscale"`
	Bridge    bridge.Variant `json:"bridge" yaml:"bridge"`
	UpperHex  bool           `json:"upper_hex" yaml:"upper_hex"`

	// File is the config file that was read, empty if none was found.
	File string `json:"-" yaml:"-"`
}

// NewViper returns a viper instance with the defaults and environment
// binding used by Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyGrayscale, "luma")
	v.SetDefault(KeyBridge, string(bridge.VariantLazy))
	v.SetDefault(KeyUpperHex, true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration into a Config.
//
// If file is empty, $HOME/.colorpad.yaml is read when it exists; a missing
// default file is not an error. An explicitly named file must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".colorpad")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
		Grayscale: strings.ToLower(v.GetString(KeyGrayscale)),
		UpperHex:  v.GetBool(KeyUpperHex),
		File:      v.ConfigFileUsed(),
	}

	switch cfg.LogLevel {
	case "info", "debug":
	default:
		return Config{}, fmt.Errorf("invalid %s %q (want info or debug)", KeyLogLevel, cfg.LogLevel)
	}
	if _, err := convert.GrayscaleAlgorithm(cfg.Grayscale); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyGrayscale, err)
	}
	variant, err := bridge.ParseVariant(strings.ToLower(v.GetString(KeyBridge)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyBridge, err)
	}
	cfg.Bridge = variant

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Registry returns a fresh default registry whose RGB to grayscale
// conversion uses the configured algorithm.
func (c Config) Registry() (*convert.Registry, error) {
	fn, err := convert.GrayscaleAlgorithm(c.Grayscale)
	if err != nil {
		return nil, err
	}
	reg := convert.NewDefaultRegistry()
	reg.Register(model.KindRgb, model.KindGrayscale, fn)
	return reg, nil
}
