// Package stop provides the stop-control validator.
package stop

import (
	"context"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/config"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// Validator controls Stop events. When another stop hook is already active
// in the chain it stays silent to avoid redundant signals; otherwise it
// acknowledges completion. It never blocks termination today, but returns
// a Result so that a future policy could.
type Validator struct {
	validator.BaseValidator
	config *config.StopValidatorConfig
}

// NewValidator creates a stop Validator.
func NewValidator(log logger.Logger, cfg *config.StopValidatorConfig) *Validator {
	return &Validator{
		BaseValidator: *validator.NewBaseValidator("stop-control", log),
		config:        cfg,
	}
}

// Validate decides whether to acknowledge the stop.
func (v *Validator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	log := v.Logger()

	if hookCtx.StopHookActive {
		log.Debug("stop hook already active, allowing silently")
		return validator.Pass()
	}

	log.Debug("acknowledging completion")

	return validator.PassWithMessage(v.config.GetCompletionMessage())
}

// Ensure Validator implements validator.Validator
var _ validator.Validator = (*Validator)(nil)
