package config

// This file loads optional overrides from a YAML config file and from
// CHRONOPREFIX_* environment variables. Only keys that are actually set
// replace the defaults already in Config.

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (CHRONOPREFIX_LOG_FILE, ...).
const EnvPrefix = "CHRONOPREFIX"

// Override keys, shared by the config file and the environment.
const (
	keyColor   = "color"
	keyLogFile = "log_file"
	keyVerbose = "verbose"
	keyConfirm = "confirm"
	keyFFprobe = "ffprobe"
)

// fileConfig mirrors the overridable subset of Config for viper.Unmarshal.
type fileConfig struct {
	Color   string `mapstructure:"color"`
	LogFile string `mapstructure:"log_file"`
	Verbose bool   `mapstructure:"verbose"`
	Confirm bool   `mapstructure:"confirm"`
	FFprobe string `mapstructure:"ffprobe"`
}

// Load applies config file and environment overrides to cfg.
//
// The file is taken from $CHRONOPREFIX_CONFIG when set (it must exist), else
// <UserConfigDir>/chronoprefix/config.yaml when present. A missing default
// file is not an error.
func Load(cfg *Config) error {
	path := os.Getenv(EnvPrefix + "_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	return load(cfg, viper.New(), path, explicit)
}

// DefaultConfigPath returns <UserConfigDir>/chronoprefix/config.yaml, or ""
// when the user config directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "chronoprefix", "config.yaml")
}

func load(cfg *Config, v *viper.Viper, path string, explicit bool) error {
	v.SetEnvPrefix(EnvPrefix)
	for _, k := range []string{keyColor, keyLogFile, keyVerbose, keyConfirm, keyFFprobe} {
		if err := v.BindEnv(k); err != nil {
			return errors.Wrapf(err, "bind env %s", k)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil || explicit {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "read config %s", path)
			}
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return errors.Wrap(err, "decode config")
	}

	if v.IsSet(keyColor) {
		mode, err := ParseColorMode(fc.Color)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	if v.IsSet(keyLogFile) {
		cfg.LogFile = fc.LogFile
	}
	if v.IsSet(keyVerbose) {
		cfg.Verbose = fc.Verbose
	}
	if v.IsSet(keyConfirm) {
		cfg.Confirm = fc.Confirm
	}
	if v.IsSet(keyFFprobe) {
		cfg.FFprobe = fc.FFprobe
	}
	return nil
}
