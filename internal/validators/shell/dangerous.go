// Package shell provides validators for shell command operations.
package shell

import (
	"context"
	"strings"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// DangerousCommandValidator blocks shell commands containing destructive
// operation substrings. Matching is case-insensitive containment against
// the full command line.
type DangerousCommandValidator struct {
	validator.BaseValidator
	config *config.ShellValidatorConfig
}

// NewDangerousCommandValidator creates a new DangerousCommandValidator instance.
func NewDangerousCommandValidator(
	log logger.Logger,
	cfg *config.ShellValidatorConfig,
) *DangerousCommandValidator {
	return &DangerousCommandValidator{
		BaseValidator: *validator.NewBaseValidator("dangerous-command", log),
		config:        cfg,
	}
}

// Validate checks the command against the dangerous command list.
func (v *DangerousCommandValidator) Validate(
	_ context.Context,
	hookCtx *hook.Context,
) *validator.Result {
	log := v.Logger()

	command := hookCtx.GetCommand()
	if command == "" {
		log.Debug("Empty command, skipping validation")
		return validator.Pass()
	}

	lowered := strings.ToLower(command)

	severity := config.SeverityError
	if v.config != nil {
		severity = v.config.GetSeverity()
	}

	for _, pattern := range v.config.GetDangerousCommands() {
		if !strings.Contains(lowered, strings.ToLower(pattern)) {
			continue
		}

		log.Info("dangerous command matched", "pattern", pattern)

		if !severity.ShouldBlock() {
			return validator.Warn("Security violation: Dangerous command blocked").
				AddDetail("pattern", pattern)
		}

		return validator.Fail("Security violation: Dangerous command blocked").
			AddDetail("pattern", pattern)
	}

	return validator.Pass()
}

// Ensure DangerousCommandValidator implements validator.Validator
var _ validator.Validator = (*DangerousCommandValidator)(nil)
