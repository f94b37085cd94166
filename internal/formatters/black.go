package formatters

import (
	"path/filepath"
	"time"

	execpkg "github.com/hookguard/hookguard/internal/exec"
)

// BlackFormatter formats Python files in place using black.
type BlackFormatter struct {
	runner  execpkg.CommandRunner
	checker execpkg.ToolChecker
	binary  string
}

// NewBlackFormatter creates a new BlackFormatter.
func NewBlackFormatter(
	runner execpkg.CommandRunner,
	checker execpkg.ToolChecker,
	binary string,
) *BlackFormatter {
	if binary == "" {
		binary = "black"
	}

	return &BlackFormatter{
		runner:  runner,
		checker: checker,
		binary:  binary,
	}
}

// Name returns the formatter name.
func (*BlackFormatter) Name() string {
	return "black"
}

// CanFormat reports whether the path is a Python file.
func (*BlackFormatter) CanFormat(path string) bool {
	return filepath.Ext(path) == ".py"
}

// Format runs black on the file.
func (f *BlackFormatter) Format(path string, timeout time.Duration) *FormatResult {
	if !f.checker.IsAvailable(f.binary) {
		return skipped(f.binary + " not found in PATH")
	}

	result := f.runner.RunWithTimeout(timeout, f.binary, path)

	return &FormatResult{
		Formatted: result.Success(),
		RawOut:    result.Stdout + result.Stderr,
		Err:       result.Err,
	}
}

var _ Formatter = (*BlackFormatter)(nil)
