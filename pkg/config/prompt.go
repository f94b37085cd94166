package config

const (
	// DefaultPromptMaxLength is the length above which prompts are blocked.
	DefaultPromptMaxLength = 10000

	// DefaultPromptMinLength is the length below which prompts get an
	// additional-context suggestion.
	DefaultPromptMinLength = 10
)

// PromptValidatorConfig configures the prompt validator.
type PromptValidatorConfig struct {
	ValidatorConfig `koanf:",squash"`

	// MaxLength is the maximum prompt length before blocking.
	// Default: 10000
	MaxLength *int `json:"max_length,omitempty" koanf:"max_length" toml:"max_length,omitempty"`

	// MinLength is the minimum prompt length before suggesting more detail.
	// Default: 10
	MinLength *int `json:"min_length,omitempty" koanf:"min_length" toml:"min_length,omitempty"`

	// DisabledPatterns is a list of built-in pattern names to disable.
	// Use this to reduce false positives from specific pattern types.
	DisabledPatterns []string `json:"disabled_patterns,omitempty" koanf:"disabled_patterns" toml:"disabled_patterns,omitempty"`

	// CustomPatterns allows adding custom regex patterns for detection.
	// These are checked after the built-in patterns.
	CustomPatterns []CustomPatternConfig `json:"custom_patterns,omitempty" koanf:"custom_patterns" toml:"custom_patterns,omitempty"`
}

// CustomPatternConfig defines a custom prompt detection pattern.
type CustomPatternConfig struct {
	// Name is a unique identifier for this pattern.
	Name string `json:"name" koanf:"name" toml:"name"`

	// Description explains what this pattern detects. It is surfaced in the
	// block reason.
	Description string `json:"description" koanf:"description" toml:"description"`

	// Regex is the regular expression pattern.
	Regex string `json:"regex" koanf:"regex" toml:"regex"`
}

// GetMaxLength returns the configured maximum prompt length.
func (c *PromptValidatorConfig) GetMaxLength() int {
	if c == nil || c.MaxLength == nil {
		return DefaultPromptMaxLength
	}

	return *c.MaxLength
}

// GetMinLength returns the configured minimum prompt length.
func (c *PromptValidatorConfig) GetMinLength() int {
	if c == nil || c.MinLength == nil {
		return DefaultPromptMinLength
	}

	return *c.MinLength
}
