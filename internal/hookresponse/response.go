// Package hookresponse translates dispatch results into the per-event-kind
// output conventions of Claude Code hooks.
package hookresponse

// Exit codes understood by the hook host.
const (
	// ExitAllow lets the operation proceed. Augment and silent-allow
	// decisions also use this code.
	ExitAllow = 0

	// ExitInternalError signals an internal fault while evaluating the hook.
	ExitInternalError = 1

	// ExitBlock blocks the operation. Only honored for PreToolUse hooks;
	// other hook kinds communicate blocks through structured output.
	ExitBlock = 2
)

// HookResponse is the top-level JSON structure written to stdout.
type HookResponse struct {
	Decision           string              `json:"decision,omitempty"` // "block"
	Reason             string              `json:"reason,omitempty"`   // shown to the user
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries additional context for the conversation.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// Outcome is the complete process-level result of a hook invocation:
// what to print where, and how to exit.
type Outcome struct {
	// ExitCode is the process exit code.
	ExitCode int

	// Response is the structured stdout payload, nil when none is needed.
	Response *HookResponse

	// InfoLines are plain lines written to stdout before any JSON payload.
	InfoLines []string

	// StderrLines are lines written to stderr.
	StderrLines []string
}
