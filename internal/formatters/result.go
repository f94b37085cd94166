// Package formatters provides typed abstractions for external code formatters.
package formatters

// FormatResult represents the result of running a formatter on a file.
type FormatResult struct {
	// Formatted indicates the formatter ran and rewrote the file in place.
	Formatted bool

	// Skipped indicates the formatter was not run (tool missing or disabled).
	Skipped bool

	// SkipReason explains why the formatter was skipped.
	SkipReason string

	// RawOut is the combined tool output.
	RawOut string

	// Err holds the failure, if any. Formatter failures never block.
	Err error
}

// Succeeded returns true if the formatter ran and completed cleanly.
func (r *FormatResult) Succeeded() bool {
	return r.Formatted && r.Err == nil
}
