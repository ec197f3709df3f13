// Package config resolves branchsweep settings from flags, environment
// variables and an optional read-only YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "BRANCHSWEEP"

	KeyGit       = "git"
	KeyIsolate   = "isolate"
	KeyAltScreen = "alt_screen"
	KeyDebugLog  = "debug_log"
	KeyLogLevel  = "log_level"
)

var (
	ErrEmptyExecutable     = errors.New("config: git executable must not be empty")
	ErrUnsupportedLogLevel = errors.New("config: unsupported log level")
)

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	Git       string `mapstructure:"git"`
	Isolate   bool   `mapstructure:"isolate"`
	AltScreen bool   `mapstructure:"alt_screen"`
	DebugLog  string `mapstructure:"debug_log"`
	LogLevel  string `mapstructure:"log_level"`
}

func Default() Config {
	return Config{
		Git:       "git",
		Isolate:   true,
		AltScreen: true,
		LogLevel:  "debug",
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Git) == "" {
		return ErrEmptyExecutable
	}
	for _, level := range logLevels {
		if c.LogLevel == level {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedLogLevel, c.LogLevel)
}

// FlagBinding maps a command-line flag onto a configuration key. Invert is
// for "--no-x" style flags that switch a default-true key off.
type FlagBinding struct {
	Key    string
	Flag   string
	Invert bool
}

// Load merges sources in precedence order: changed flags, BRANCHSWEEP_*
// environment variables, the file at path (when non-empty), defaults.
func Load(path string, flags *pflag.FlagSet, bindings []FlagBinding) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault(KeyGit, defaults.Git)
	v.SetDefault(KeyIsolate, defaults.Isolate)
	v.SetDefault(KeyAltScreen, defaults.AltScreen)
	v.SetDefault(KeyDebugLog, defaults.DebugLog)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read configuration %s: %w", path, err)
		}
	}

	if flags != nil {
		if err := applyFlags(v, flags, bindings); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyFlags(v *viper.Viper, flags *pflag.FlagSet, bindings []FlagBinding) error {
	for _, b := range bindings {
		flag := flags.Lookup(b.Flag)
		if flag == nil {
			return fmt.Errorf("config: unknown flag %q for key %q", b.Flag, b.Key)
		}
		if !flag.Changed {
			continue
		}

		if !b.Invert {
			v.Set(b.Key, flag.Value.String())
			continue
		}

		enabled, err := flags.GetBool(b.Flag)
		if err != nil {
			return fmt.Errorf("config: flag %q: %w", b.Flag, err)
		}
		v.Set(b.Key, !enabled)
	}
	return nil
}
