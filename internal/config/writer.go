package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/hookguard/hookguard/pkg/config"
)

const (
	// ConfigFileMode keeps config files private to the owner.
	ConfigFileMode = 0o600

	// ConfigDirMode keeps config directories private to the owner.
	ConfigDirMode = 0o700
)

// Writer persists configuration as TOML.
type Writer struct{}

// NewWriter creates a config writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes cfg to path, creating parent directories as needed.
func (w *Writer) Write(path string, cfg *config.Config) error {
	data, err := w.Marshal(cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	if err := os.WriteFile(path, data, ConfigFileMode); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}

// Marshal serializes cfg to indented TOML.
func (w *Writer) Marshal(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encoding TOML")
	}

	return buf.Bytes(), nil
}

// DefaultConfig returns a fully populated config mirroring the built-in
// defaults, suitable for writing a starter config file.
func DefaultConfig() *config.Config {
	enabled := true
	maxLen := defaultMaxPromptLen
	minLen := defaultMinPromptLen

	return &config.Config{
		Version: config.CurrentConfigVersion,
		Global: &config.GlobalConfig{
			DefaultTimeout: config.Duration(config.DefaultTimeout),
		},
		Validators: &config.ValidatorsConfig{
			Shell: &config.ShellValidatorConfig{
				ValidatorConfig: config.ValidatorConfig{
					Enabled:  &enabled,
					Severity: config.SeverityError,
				},
				DangerousCommands: config.DefaultDangerousCommands,
			},
			File: &config.FileValidatorConfig{
				ValidatorConfig: config.ValidatorConfig{
					Enabled:  &enabled,
					Severity: config.SeverityError,
				},
				SensitivePaths: config.DefaultSensitivePaths,
			},
			Prompt: &config.PromptValidatorConfig{
				ValidatorConfig: config.ValidatorConfig{
					Enabled:  &enabled,
					Severity: config.SeverityError,
				},
				MaxLength: &maxLen,
				MinLength: &minLen,
			},
			Format: &config.FormatValidatorConfig{
				ValidatorConfig: config.ValidatorConfig{
					Enabled:  &enabled,
					Severity: config.SeverityWarning,
				},
				Timeout:      config.Duration(config.DefaultTimeout),
				BlackPath:    defaultBlackBinary,
				PrettierPath: defaultPrettierBinary,
			},
			Stop: &config.StopValidatorConfig{
				Enabled:           &enabled,
				CompletionMessage: config.DefaultCompletionMessage,
			},
		},
	}
}
