package hookresponse

import (
	"strings"

	"github.com/hookguard/hookguard/internal/dispatcher"
	"github.com/hookguard/hookguard/pkg/hook"
)

// PassConfirmation is printed when a pre-execution security check allows
// the operation.
const PassConfirmation = "Security check passed"

// internalErrorPrefix distinguishes internal faults from policy messages.
const internalErrorPrefix = "Hook error: "

// Build translates a dispatch result into the output convention of the
// given hook kind.
func Build(eventType hook.EventType, result *dispatcher.DispatchResult) *Outcome {
	if result == nil {
		result = &dispatcher.DispatchResult{}
	}

	switch eventType {
	case hook.EventTypePreToolUse:
		return buildPreToolUse(result)
	case hook.EventTypeUserPromptSubmit:
		return buildUserPromptSubmit(result)
	case hook.EventTypeStop:
		return buildStop(result)
	default:
		// PostToolUse and unknown kinds never block.
		return buildObservational(result)
	}
}

// InternalError builds the outcome for an internal evaluation fault.
func InternalError(err error) *Outcome {
	return &Outcome{
		ExitCode:    ExitInternalError,
		StderrLines: []string{internalErrorPrefix + err.Error()},
	}
}

// buildPreToolUse blocks via exit code 2; the exit code alone is the
// signal, no structured output is emitted.
func buildPreToolUse(result *dispatcher.DispatchResult) *Outcome {
	if result.ShouldBlock() {
		return &Outcome{
			ExitCode:    ExitBlock,
			StderrLines: []string{result.BlockReason()},
		}
	}

	lines := make([]string, 0, len(result.Infos)+len(result.Errors)+1)
	lines = append(lines, result.Infos...)
	lines = append(lines, result.Warnings()...)
	lines = append(lines, PassConfirmation)

	return &Outcome{
		ExitCode:  ExitAllow,
		InfoLines: lines,
	}
}

// buildUserPromptSubmit blocks via structured stdout output and always
// exits 0.
func buildUserPromptSubmit(result *dispatcher.DispatchResult) *Outcome {
	if result.ShouldBlock() {
		return &Outcome{
			ExitCode: ExitAllow,
			Response: &HookResponse{
				Decision: "block",
				Reason:   result.BlockReason(),
			},
		}
	}

	lines := make([]string, 0, len(result.Infos)+len(result.Errors))
	lines = append(lines, result.Infos...)
	lines = append(lines, result.Warnings()...)

	if len(result.AdditionalContext) > 0 {
		return &Outcome{
			ExitCode:  ExitAllow,
			InfoLines: lines,
			Response: &HookResponse{
				HookSpecificOutput: &HookSpecificOutput{
					HookEventName:     hook.EventTypeUserPromptSubmit.String(),
					AdditionalContext: strings.Join(result.AdditionalContext, "\n"),
				},
			},
		}
	}

	return &Outcome{
		ExitCode:  ExitAllow,
		InfoLines: lines,
	}
}

// buildStop allows termination with an optional acknowledgment. A blocking
// result vetoes termination through structured output.
func buildStop(result *dispatcher.DispatchResult) *Outcome {
	if result.ShouldBlock() {
		return &Outcome{
			ExitCode: ExitAllow,
			Response: &HookResponse{
				Decision: "block",
				Reason:   result.BlockReason(),
			},
		}
	}

	return &Outcome{
		ExitCode:  ExitAllow,
		InfoLines: result.Infos,
	}
}

// buildObservational reports info lines and warnings without ever blocking.
func buildObservational(result *dispatcher.DispatchResult) *Outcome {
	lines := make([]string, 0, len(result.Infos)+len(result.Errors))
	lines = append(lines, result.Infos...)
	lines = append(lines, result.Warnings()...)

	return &Outcome{
		ExitCode:  ExitAllow,
		InfoLines: lines,
	}
}
