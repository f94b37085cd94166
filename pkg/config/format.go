package config

import "time"

// FormatValidatorConfig configures the post-write auto-format validator.
type FormatValidatorConfig struct {
	ValidatorConfig `koanf:",squash"`

	// Timeout is the budget for a single formatter invocation.
	// Default: the global default timeout ("10s").
	Timeout Duration `json:"timeout,omitempty" koanf:"timeout" toml:"timeout,omitempty"`

	// Python enables formatting of .py files with black.
	// Default: true
	Python *bool `json:"python,omitempty" koanf:"python" toml:"python,omitempty"`

	// JavaScript enables formatting of .js/.ts files with prettier.
	// Default: true
	JavaScript *bool `json:"javascript,omitempty" koanf:"javascript" toml:"javascript,omitempty"`

	// BlackPath overrides the black binary location. Default: "black" from PATH.
	BlackPath string `json:"black_path,omitempty" koanf:"black_path" toml:"black_path,omitempty"`

	// PrettierPath overrides the prettier binary location.
	// Default: "prettier" from PATH.
	PrettierPath string `json:"prettier_path,omitempty" koanf:"prettier_path" toml:"prettier_path,omitempty"`
}

// GetTimeout returns the formatter timeout, falling back to fallback when unset.
func (c *FormatValidatorConfig) GetTimeout(fallback time.Duration) time.Duration {
	if c == nil || c.Timeout == 0 {
		return fallback
	}

	return c.Timeout.ToDuration()
}

// IsPythonEnabled returns true unless Python formatting is explicitly disabled.
func (c *FormatValidatorConfig) IsPythonEnabled() bool {
	if c == nil || c.Python == nil {
		return true
	}

	return *c.Python
}

// IsJavaScriptEnabled returns true unless JavaScript formatting is explicitly disabled.
func (c *FormatValidatorConfig) IsJavaScriptEnabled() bool {
	if c == nil || c.JavaScript == nil {
		return true
	}

	return *c.JavaScript
}

// GetBlackPath returns the black binary to invoke.
func (c *FormatValidatorConfig) GetBlackPath() string {
	if c == nil || c.BlackPath == "" {
		return "black"
	}

	return c.BlackPath
}

// GetPrettierPath returns the prettier binary to invoke.
func (c *FormatValidatorConfig) GetPrettierPath() string {
	if c == nil || c.PrettierPath == "" {
		return "prettier"
	}

	return c.PrettierPath
}
