// Package file provides validators for file write operations.
package file

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// SensitiveFileValidator blocks writes to sensitive paths. A path is
// sensitive when it contains one of the configured substrings
// (case-insensitive) or matches one of the configured glob patterns.
type SensitiveFileValidator struct {
	validator.BaseValidator
	config *config.FileValidatorConfig
}

// NewSensitiveFileValidator creates a new SensitiveFileValidator instance.
func NewSensitiveFileValidator(
	log logger.Logger,
	cfg *config.FileValidatorConfig,
) *SensitiveFileValidator {
	return &SensitiveFileValidator{
		BaseValidator: *validator.NewBaseValidator("sensitive-file", log),
		config:        cfg,
	}
}

// Validate checks the target path against the sensitive path lists.
func (v *SensitiveFileValidator) Validate(
	_ context.Context,
	hookCtx *hook.Context,
) *validator.Result {
	log := v.Logger()

	path := hookCtx.GetFilePath()
	if path == "" {
		log.Debug("Empty file path, skipping validation")
		return validator.Pass()
	}

	severity := config.SeverityError
	if v.config != nil {
		severity = v.config.GetSeverity()
	}

	lowered := strings.ToLower(path)

	for _, substr := range v.config.GetSensitivePaths() {
		if strings.Contains(lowered, strings.ToLower(substr)) {
			log.Info("sensitive path matched", "path", path, "pattern", substr)

			return v.blockResult(severity, substr)
		}
	}

	for _, pattern := range v.config.GetSensitiveGlobs() {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			log.Debug("invalid glob pattern", "pattern", pattern, "error", err)
			continue
		}

		if matched {
			log.Info("sensitive glob matched", "path", path, "pattern", pattern)

			return v.blockResult(severity, pattern)
		}
	}

	return validator.Pass()
}

func (*SensitiveFileValidator) blockResult(
	severity config.Severity,
	pattern string,
) *validator.Result {
	const message = "Security violation: Cannot write to sensitive files"

	if !severity.ShouldBlock() {
		return validator.Warn(message).AddDetail("pattern", pattern)
	}

	return validator.Fail(message).AddDetail("pattern", pattern)
}

// Ensure SensitiveFileValidator implements validator.Validator
var _ validator.Validator = (*SensitiveFileValidator)(nil)
