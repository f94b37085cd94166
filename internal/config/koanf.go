// Package config loads hookguard configuration with koanf, merging built-in
// defaults, an optional explicit TOML file, and HOOKGUARD_* environment
// variables, in that order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/logger"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// HOOKGUARD_VALIDATORS_SHELL_ENABLED=false.
const EnvPrefix = "HOOKGUARD_"

const koanfDelim = "."

var (
	// ErrConfigNotFound is returned when an explicitly requested config file
	// does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidTOML is returned when a config file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML config")

	// ErrWorldWritableConfig is returned when a config file is writable by
	// anyone. Such files are rejected to keep the hook decision trustworthy.
	ErrWorldWritableConfig = errors.New("config file is world-writable")
)

// Loader loads configuration from defaults, an optional file, and the
// environment.
type Loader struct {
	log  logger.Logger
	path string
}

// NewLoader creates a config loader. path is the explicit config file to
// load; empty means defaults and environment only.
func NewLoader(log logger.Logger, path string) *Loader {
	return &Loader{log: log, path: path}
}

// Load merges all configuration layers and unmarshals the result.
func (l *Loader) Load() (*config.Config, error) {
	k := koanf.New(koanfDelim)

	if err := k.Load(confmap.Provider(defaultsToMap(), koanfDelim), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	if l.path != "" {
		if err := l.loadTOMLFile(k, l.path); err != nil {
			return nil, err
		}
	}

	if err := l.loadEnv(k); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	cfg := &config.Config{}
	if err := unmarshalConfig(k, cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return cfg, nil
}

func (l *Loader) loadTOMLFile(k *koanf.Koanf, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrConfigNotFound, "%s", path)
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(ErrWorldWritableConfig, "%s", path)
	}

	l.log.Debug("loading config file", "path", path)

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.CombineErrors(ErrInvalidTOML, errors.Wrapf(err, "parsing %s", path))
	}

	return nil
}

func (l *Loader) loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(koanfDelim, env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
			key = strings.ReplaceAll(key, "_", koanfDelim)

			return envKeyFixups(key), value
		},
	}), nil)
}

// envKeyFixups restores multi-word leaf keys that the underscore-to-delimiter
// transform split apart.
func envKeyFixups(key string) string {
	replacements := [][2]string{
		{"default.timeout", "default_timeout"},
		{"dangerous.commands", "dangerous_commands"},
		{"extra.commands", "extra_commands"},
		{"sensitive.paths", "sensitive_paths"},
		{"sensitive.globs", "sensitive_globs"},
		{"max.length", "max_length"},
		{"min.length", "min_length"},
		{"disabled.patterns", "disabled_patterns"},
		{"black.path", "black_path"},
		{"prettier.path", "prettier_path"},
		{"completion.message", "completion_message"},
	}

	for _, r := range replacements {
		key = strings.ReplaceAll(key, r[0], r[1])
	}

	return key
}

func unmarshalConfig(k *koanf.Koanf, cfg *config.Config) error {
	return k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag:           "koanf",
		FlatPaths:     false,
		DecoderConfig: customDecoderConfig(cfg),
	})
}
