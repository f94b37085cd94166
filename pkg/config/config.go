// Package config provides configuration schema types for hookguard validators.
package config

import "time"

// CurrentConfigVersion is the latest config schema version.
const CurrentConfigVersion = 1

// DefaultTimeout is the default budget for external tool invocations.
const DefaultTimeout = 10 * time.Second

// Config represents the root configuration for hookguard.
type Config struct {
	// Version is the config schema version. Defaults to 1 when omitted.
	Version int `json:"version,omitempty" koanf:"version" toml:"version,omitempty"`

	// Validators groups all validator configurations.
	Validators *ValidatorsConfig `json:"validators,omitempty" koanf:"validators" toml:"validators,omitempty"`

	// Global settings that apply across all validators.
	Global *GlobalConfig `json:"global,omitempty" koanf:"global" toml:"global,omitempty"`
}

// ValidatorsConfig groups all validator configurations by hook concern.
type ValidatorsConfig struct {
	// Shell command security validator configuration.
	Shell *ShellValidatorConfig `json:"shell,omitempty" koanf:"shell" toml:"shell,omitempty"`

	// Sensitive file path validator configuration.
	File *FileValidatorConfig `json:"file,omitempty" koanf:"file" toml:"file,omitempty"`

	// Prompt validator configuration.
	Prompt *PromptValidatorConfig `json:"prompt,omitempty" koanf:"prompt" toml:"prompt,omitempty"`

	// Auto-format validator configuration.
	Format *FormatValidatorConfig `json:"format,omitempty" koanf:"format" toml:"format,omitempty"`

	// Stop controller configuration.
	Stop *StopValidatorConfig `json:"stop,omitempty" koanf:"stop" toml:"stop,omitempty"`
}

// GlobalConfig contains global settings that apply to all validators.
type GlobalConfig struct {
	// DefaultTimeout is the default timeout for all operations that support
	// timeouts. Individual validator timeouts override this value.
	// Default: "10s"
	DefaultTimeout Duration `json:"default_timeout,omitempty" koanf:"default_timeout" toml:"default_timeout,omitempty"`
}

// GetDefaultTimeout returns the configured default timeout, or DefaultTimeout.
func (c *GlobalConfig) GetDefaultTimeout() time.Duration {
	if c == nil || c.DefaultTimeout == 0 {
		return DefaultTimeout
	}

	return c.DefaultTimeout.ToDuration()
}

// GetShell returns the shell validator config, which may be nil.
func (c *Config) GetShell() *ShellValidatorConfig {
	if c == nil || c.Validators == nil {
		return nil
	}

	return c.Validators.Shell
}

// GetFile returns the file validator config, which may be nil.
func (c *Config) GetFile() *FileValidatorConfig {
	if c == nil || c.Validators == nil {
		return nil
	}

	return c.Validators.File
}

// GetPrompt returns the prompt validator config, which may be nil.
func (c *Config) GetPrompt() *PromptValidatorConfig {
	if c == nil || c.Validators == nil {
		return nil
	}

	return c.Validators.Prompt
}

// GetFormat returns the format validator config, which may be nil.
func (c *Config) GetFormat() *FormatValidatorConfig {
	if c == nil || c.Validators == nil {
		return nil
	}

	return c.Validators.Format
}

// GetStop returns the stop controller config, which may be nil.
func (c *Config) GetStop() *StopValidatorConfig {
	if c == nil || c.Validators == nil {
		return nil
	}

	return c.Validators.Stop
}
