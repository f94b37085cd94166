// Package dispatcher orchestrates validation of hook contexts.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/hookguard/hookguard/internal/validator"
	"github.com/hookguard/hookguard/pkg/hook"
	"github.com/hookguard/hookguard/pkg/logger"
	"github.com/hookguard/hookguard/pkg/parser"
)

// ValidationError represents a validation failure.
type ValidationError struct {
	// Validator is the name of the validator that failed.
	Validator string

	// Message is the error message.
	Message string

	// Details contains additional error details.
	Details map[string]string

	// ShouldBlock indicates whether this error should block the operation.
	ShouldBlock bool
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Validator, e.Message)
	}

	return e.Validator
}

// DispatchResult aggregates the outcome of a dispatch run.
type DispatchResult struct {
	// Errors holds failures and warnings from validators.
	Errors []*ValidationError

	// Infos holds messages from passing validators, in validator order.
	Infos []string

	// AdditionalContext holds context strings to inject into the
	// conversation (prompt events only).
	AdditionalContext []string
}

// ShouldBlock returns true if any validation error should block the operation.
func (r *DispatchResult) ShouldBlock() bool {
	for _, err := range r.Errors {
		if err.ShouldBlock {
			return true
		}
	}

	return false
}

// BlockReason returns the message of the first blocking error.
func (r *DispatchResult) BlockReason() string {
	for _, err := range r.Errors {
		if err.ShouldBlock {
			return err.Message
		}
	}

	return ""
}

// Warnings returns the messages of all non-blocking errors.
func (r *DispatchResult) Warnings() []string {
	warnings := make([]string, 0)

	for _, err := range r.Errors {
		if !err.ShouldBlock {
			warnings = append(warnings, err.Message)
		}
	}

	return warnings
}

// merge appends another result's contents in order.
func (r *DispatchResult) merge(other *DispatchResult) {
	if other == nil {
		return
	}

	r.Errors = append(r.Errors, other.Errors...)
	r.Infos = append(r.Infos, other.Infos...)
	r.AdditionalContext = append(r.AdditionalContext, other.AdditionalContext...)
}

// Dispatcher orchestrates validation of hook contexts.
type Dispatcher struct {
	registry *validator.Registry
	logger   logger.Logger
	executor Executor
}

// NewDispatcher creates a new Dispatcher with sequential execution.
func NewDispatcher(registry *validator.Registry, logger logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		executor: NewSequentialExecutor(logger),
	}
}

// NewDispatcherWithExecutor creates a new Dispatcher with a custom executor.
func NewDispatcherWithExecutor(
	registry *validator.Registry,
	logger logger.Logger,
	executor Executor,
) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
		executor: executor,
	}
}

// Dispatch validates the context using all matching validators.
func (d *Dispatcher) Dispatch(ctx context.Context, hookCtx *hook.Context) *DispatchResult {
	d.logger.Info("dispatching",
		"event", hookCtx.EventType,
		"tool", hookCtx.ToolName,
	)

	result := d.runValidators(ctx, hookCtx)

	// Bash commands can write files too; validate those writes as if they
	// came from the Write tool.
	if hookCtx.EventType == hook.EventTypePreToolUse && hookCtx.ToolName == hook.ToolTypeBash {
		result.merge(d.validateBashFileWrites(ctx, hookCtx))
	}

	return result
}

// runValidators runs validators on a context and collects their results.
func (d *Dispatcher) runValidators(ctx context.Context, hookCtx *hook.Context) *DispatchResult {
	validators := d.registry.FindValidators(hookCtx)

	if len(validators) == 0 {
		d.logger.Info("no validators found",
			"event", hookCtx.EventType,
			"tool", hookCtx.ToolName,
		)

		return &DispatchResult{}
	}

	d.logger.Info("validators found",
		"count", len(validators),
	)

	result := d.executor.Execute(ctx, hookCtx, validators)

	for _, verr := range result.Errors {
		if verr.ShouldBlock {
			d.logger.Error("validator failed",
				"validator", verr.Validator,
				"message", verr.Message,
			)
		} else {
			d.logger.Info("validator warned",
				"validator", verr.Validator,
				"message", verr.Message,
			)
		}
	}

	return result
}

// validateBashFileWrites parses Bash commands for file writes and validates
// them as synthetic Write operations.
func (d *Dispatcher) validateBashFileWrites(
	ctx context.Context,
	bashCtx *hook.Context,
) *DispatchResult {
	bashParser := parser.NewBashParser()

	parsed, err := bashParser.Parse(bashCtx.GetCommand())
	if err != nil {
		d.logger.Debug("failed to parse bash command for file writes",
			"error", err,
		)

		return nil
	}

	if len(parsed.FileWrites) == 0 {
		return nil
	}

	d.logger.Info("detected bash file writes",
		"count", len(parsed.FileWrites),
	)

	combined := &DispatchResult{}

	for _, fw := range parsed.FileWrites {
		syntheticCtx := &hook.Context{
			EventType: hook.EventTypePreToolUse,
			ToolName:  hook.ToolTypeWrite,
			ToolInput: hook.ToolInput{
				FilePath: fw.Path,
				Content:  fw.Content,
			},
		}

		d.logger.Debug("validating synthetic write context",
			"file", fw.Path,
			"operation", fw.Operation,
		)

		combined.merge(d.runValidators(ctx, syntheticCtx))
	}

	return combined
}
