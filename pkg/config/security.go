package config

// DefaultDangerousCommands are the command substrings blocked by the shell
// validator when no custom list is configured. Matching is case-insensitive
// substring containment against the full command line.
var DefaultDangerousCommands = []string{
	"rm -rf",
	"sudo",
	"format",
	"fdisk",
	"mkfs",
}

// DefaultSensitivePaths are the path substrings blocked by the file validator
// when no custom list is configured.
var DefaultSensitivePaths = []string{
	".env",
	"secrets",
	"id_rsa",
	"config.json",
}

// ShellValidatorConfig configures the dangerous-command validator.
type ShellValidatorConfig struct {
	ValidatorConfig `koanf:",squash"`

	// DangerousCommands replaces the built-in list of blocked command
	// substrings. Leave empty to use DefaultDangerousCommands.
	DangerousCommands []string `json:"dangerous_commands,omitempty" koanf:"dangerous_commands" toml:"dangerous_commands,omitempty"`

	// ExtraCommands is appended to the effective dangerous command list.
	ExtraCommands []string `json:"extra_commands,omitempty" koanf:"extra_commands" toml:"extra_commands,omitempty"`
}

// GetDangerousCommands returns the effective list of blocked command substrings.
func (c *ShellValidatorConfig) GetDangerousCommands() []string {
	base := DefaultDangerousCommands
	if c != nil && len(c.DangerousCommands) > 0 {
		base = c.DangerousCommands
	}

	if c == nil || len(c.ExtraCommands) == 0 {
		return base
	}

	merged := make([]string, 0, len(base)+len(c.ExtraCommands))
	merged = append(merged, base...)
	merged = append(merged, c.ExtraCommands...)

	return merged
}

// FileValidatorConfig configures the sensitive-path validator.
type FileValidatorConfig struct {
	ValidatorConfig `koanf:",squash"`

	// SensitivePaths replaces the built-in list of blocked path substrings.
	// Leave empty to use DefaultSensitivePaths.
	SensitivePaths []string `json:"sensitive_paths,omitempty" koanf:"sensitive_paths" toml:"sensitive_paths,omitempty"`

	// SensitiveGlobs is a list of doublestar glob patterns that additionally
	// block matching file paths (e.g. "**/*.pem", "**/credentials/**").
	SensitiveGlobs []string `json:"sensitive_globs,omitempty" koanf:"sensitive_globs" toml:"sensitive_globs,omitempty"`
}

// GetSensitivePaths returns the effective list of blocked path substrings.
func (c *FileValidatorConfig) GetSensitivePaths() []string {
	if c != nil && len(c.SensitivePaths) > 0 {
		return c.SensitivePaths
	}

	return DefaultSensitivePaths
}

// GetSensitiveGlobs returns the configured glob patterns, which may be empty.
func (c *FileValidatorConfig) GetSensitiveGlobs() []string {
	if c == nil {
		return nil
	}

	return c.SensitiveGlobs
}
