package formatters

import (
	"path/filepath"
	"slices"
	"time"

	execpkg "github.com/hookguard/hookguard/internal/exec"
)

// prettierExtensions lists the file extensions prettier is applied to.
var prettierExtensions = []string{".js", ".ts", ".jsx", ".tsx"}

// PrettierFormatter formats JavaScript and TypeScript files in place
// using prettier.
type PrettierFormatter struct {
	runner  execpkg.CommandRunner
	checker execpkg.ToolChecker
	binary  string
}

// NewPrettierFormatter creates a new PrettierFormatter.
func NewPrettierFormatter(
	runner execpkg.CommandRunner,
	checker execpkg.ToolChecker,
	binary string,
) *PrettierFormatter {
	if binary == "" {
		binary = "prettier"
	}

	return &PrettierFormatter{
		runner:  runner,
		checker: checker,
		binary:  binary,
	}
}

// Name returns the formatter name.
func (*PrettierFormatter) Name() string {
	return "prettier"
}

// CanFormat reports whether the path is a JavaScript or TypeScript file.
func (*PrettierFormatter) CanFormat(path string) bool {
	return slices.Contains(prettierExtensions, filepath.Ext(path))
}

// Format runs prettier --write on the file.
func (f *PrettierFormatter) Format(path string, timeout time.Duration) *FormatResult {
	if !f.checker.IsAvailable(f.binary) {
		return skipped(f.binary + " not found in PATH")
	}

	result := f.runner.RunWithTimeout(timeout, f.binary, "--write", path)

	return &FormatResult{
		Formatted: result.Success(),
		RawOut:    result.Stdout + result.Stderr,
		Err:       result.Err,
	}
}

var _ Formatter = (*PrettierFormatter)(nil)
