package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/park285/moveset-verifier/internal/obslog"
	"github.com/park285/moveset-verifier/internal/rules"
)

// EnvPrefix is prepended to every key when read from the environment, e.g. MOVESET_LOG_LEVEL.
const EnvPrefix = "MOVESET_"

const (
	DefaultNotation  = "san"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "legacy"
)

type AppConfig struct {
	Notation    string `koanf:"notation"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`
	LogFile     string `koanf:"log_file"`
	LogCaller   bool   `koanf:"log_caller"`
	NoColor     bool   `koanf:"no_color"`
	MessagesDir string `koanf:"messages_dir"`
}

// RulesNotation returns the parsed notation. Load has already validated it.
func (c *AppConfig) RulesNotation() rules.Notation {
	n, err := rules.ParseNotation(c.Notation)
	if err != nil {
		return rules.NotationSAN
	}
	return n
}

// BindFlags registers the persistent CLI flags Load understands.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("notation", DefaultNotation, "Move notation in input files (san|uci|lan)")
	fs.String("log-level", DefaultLogLevel, "Log level (debug|info|warn|error)")
	fs.String("log-format", DefaultLogFormat, "Log format (legacy|console|json)")
	fs.String("log-file", "", "Also append logs to this file")
	fs.Bool("log-caller", false, "Include caller in log lines")
	fs.Bool("no-color", false, "Disable styled status lines")
	fs.String("messages-dir", "", "Directory of YAML files overriding status line templates")
}

// Load merges defaults, MOVESET_* environment variables and explicitly set flags,
// in that order of increasing priority. flags may be nil.
func Load(flags *pflag.FlagSet) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"notation":     DefaultNotation,
		"log_level":    DefaultLogLevel,
		"log_format":   DefaultLogFormat,
		"log_file":     "",
		"log_caller":   false,
		"no_color":     false,
		"messages_dir": "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// MOVESET_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Notation = strings.ToLower(strings.TrimSpace(cfg.Notation))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.LogFile = strings.TrimSpace(cfg.LogFile)
	cfg.MessagesDir = strings.TrimSpace(cfg.MessagesDir)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if _, err := rules.ParseNotation(c.Notation); err != nil {
		return err
	}
	if !obslog.ValidFormat(c.LogFormat) {
		return errors.New("log_format must be one of legacy, console, json")
	}
	return nil
}
