package config

// Default configuration constants for koanf map defaults.
const (
	defaultTimeoutStr     = "10s"
	defaultMaxPromptLen   = 10000
	defaultMinPromptLen   = 10
	defaultCompletionMsg  = "Claude Code execution completed successfully"
	defaultBlackBinary    = "black"
	defaultPrettierBinary = "prettier"
)

// defaultsToMap returns the built-in defaults as a koanf confmap.
func defaultsToMap() map[string]any {
	return map[string]any{
		"version":    1,
		"global":     defaultGlobalMap(),
		"validators": defaultValidatorsMap(),
	}
}

func defaultGlobalMap() map[string]any {
	return map[string]any{
		"default_timeout": defaultTimeoutStr,
	}
}

func defaultValidatorsMap() map[string]any {
	return map[string]any{
		"shell":  defaultShellMap(),
		"file":   defaultFileMap(),
		"prompt": defaultPromptMap(),
		"format": defaultFormatMap(),
		"stop":   defaultStopMap(),
	}
}

func defaultShellMap() map[string]any {
	return map[string]any{
		"enabled":  true,
		"severity": "error",
	}
}

func defaultFileMap() map[string]any {
	return map[string]any{
		"enabled":  true,
		"severity": "error",
	}
}

func defaultPromptMap() map[string]any {
	return map[string]any{
		"enabled":    true,
		"severity":   "error",
		"max_length": defaultMaxPromptLen,
		"min_length": defaultMinPromptLen,
	}
}

func defaultFormatMap() map[string]any {
	return map[string]any{
		"enabled":       true,
		"severity":      "warning",
		"timeout":       defaultTimeoutStr,
		"black_path":    defaultBlackBinary,
		"prettier_path": defaultPrettierBinary,
	}
}

func defaultStopMap() map[string]any {
	return map[string]any{
		"enabled":            true,
		"completion_message": defaultCompletionMsg,
	}
}
