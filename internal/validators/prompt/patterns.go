package prompt

import "regexp"

// Pattern describes a sensitive content pattern checked against prompts.
type Pattern struct {
	// Name uniquely identifies the pattern for configuration purposes.
	Name string

	// Description is surfaced in block reasons when the pattern matches.
	Description string

	// Regex is the compiled pattern.
	Regex *regexp.Regexp
}

// DefaultPatterns are checked in order against the prompt text.
// The first match wins.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:        "credential",
			Description: "Password/Secret detected",
			Regex:       regexp.MustCompile(`(?i)\b(password|secret|key|token)\s*[:=]`),
		},
		{
			Name:        "bulk-delete",
			Description: "Dangerous delete operation",
			Regex:       regexp.MustCompile(`(?i)delete\s+all`),
		},
		{
			Name:        "drop-table",
			Description: "Dangerous SQL operation",
			Regex:       regexp.MustCompile(`(?i)drop\s+table`),
		},
		{
			Name:        "card-number",
			Description: "Credit card number pattern",
			Regex:       regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
		},
		{
			Name:        "email",
			Description: "Email address",
			Regex:       regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		},
	}
}
