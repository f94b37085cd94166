package formatters

//go:generate mockgen -source=formatter.go -destination=formatter_mock.go -package=formatters

import (
	"time"
)

// Formatter rewrites a file in place using an external tool.
type Formatter interface {
	// Name returns the formatter name.
	Name() string

	// CanFormat reports whether the formatter handles the given file path.
	CanFormat(path string) bool

	// Format runs the formatter on the file with the given timeout.
	Format(path string, timeout time.Duration) *FormatResult
}

func skipped(reason string) *FormatResult {
	return &FormatResult{
		Skipped:    true,
		SkipReason: reason,
	}
}
