package dispatcher

import (
	"context"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
)

// Executor runs validators and collects their results.
type Executor interface {
	// Execute runs validators and returns the aggregated result.
	Execute(
		ctx context.Context,
		hookCtx *hook.Context,
		validators []validator.Validator,
	) *DispatchResult
}

// resultLogger is implemented by validators that log their own results,
// typically by embedding validator.BaseValidator. It is the channel through
// which result details reach the log file.
type resultLogger interface {
	LogValidation(hookCtx *hook.Context, result *validator.Result)
}

// SequentialExecutor runs validators one at a time in order. Hook decisions
// must be deterministic, so this is the only executor.
type SequentialExecutor struct {
	logger logger.Logger
}

// NewSequentialExecutor creates a new SequentialExecutor.
func NewSequentialExecutor(log logger.Logger) *SequentialExecutor {
	return &SequentialExecutor{logger: log}
}

// Execute runs validators sequentially.
func (*SequentialExecutor) Execute(
	ctx context.Context,
	hookCtx *hook.Context,
	validators []validator.Validator,
) *DispatchResult {
	result := &DispatchResult{}

	for _, v := range validators {
		select {
		case <-ctx.Done():
			return result
		default:
		}

		vResult := v.Validate(ctx, hookCtx)

		if rl, ok := v.(resultLogger); ok {
			rl.LogValidation(hookCtx, vResult)
		}

		if !vResult.Passed {
			result.Errors = append(result.Errors, toValidationError(v, vResult))
			continue
		}

		if vResult.Message != "" {
			result.Infos = append(result.Infos, vResult.Message)
		}

		if vResult.AdditionalContext != "" {
			result.AdditionalContext = append(result.AdditionalContext, vResult.AdditionalContext)
		}
	}

	return result
}

// toValidationError converts a validator result to a ValidationError.
func toValidationError(v validator.Validator, result *validator.Result) *ValidationError {
	return &ValidationError{
		Validator:   v.Name(),
		Message:     result.Message,
		Details:     result.Details,
		ShouldBlock: result.ShouldBlock,
	}
}
