package config

// DefaultCompletionMessage is printed by the stop controller when no other
// stop hook is active.
const DefaultCompletionMessage = "Claude Code execution completed successfully"

// StopValidatorConfig configures the stop controller. The controller never
// fails, so unlike the other validators it carries no severity.
type StopValidatorConfig struct {
	// Enabled controls whether the stop controller is active.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled,omitempty"`

	// CompletionMessage overrides the acknowledgment printed on stop.
	CompletionMessage string `json:"completion_message,omitempty" koanf:"completion_message" toml:"completion_message,omitempty"`
}

// IsEnabled returns true if the stop controller is enabled.
// Returns true if Enabled is nil (default behavior).
func (c *StopValidatorConfig) IsEnabled() bool {
	if c.Enabled == nil {
		return true
	}

	return *c.Enabled
}

// GetCompletionMessage returns the effective completion acknowledgment.
func (c *StopValidatorConfig) GetCompletionMessage() string {
	if c == nil || c.CompletionMessage == "" {
		return DefaultCompletionMessage
	}

	return c.CompletionMessage
}
