// Package hook provides core types for Claude Code hook events.
package hook

import "encoding/json"

//go:generate enumer -type=EventType -trimprefix=EventType -json -text
//go:generate enumer -type=ToolType -trimprefix=ToolType -json -text
//go:generate go run github.com/hookguard/hookguard/tools/enumerfix eventtype_enumer.go tooltype_enumer.go

// EventType represents the type of hook event.
type EventType int

const (
	// EventTypeUnknown represents an unknown event type.
	EventTypeUnknown EventType = iota

	// EventTypePreToolUse is triggered before a tool is executed.
	EventTypePreToolUse

	// EventTypePostToolUse is triggered after a tool has executed.
	EventTypePostToolUse

	// EventTypeUserPromptSubmit is triggered when a user prompt is submitted.
	EventTypeUserPromptSubmit

	// EventTypeStop is triggered when Claude Code is about to stop.
	EventTypeStop
)

// ToolType represents the type of tool being used.
type ToolType int

const (
	// ToolTypeUnknown represents an unknown tool type.
	ToolTypeUnknown ToolType = iota

	// ToolTypeBash represents the Bash tool for executing shell commands.
	ToolTypeBash

	// ToolTypeWrite represents the Write tool for creating files.
	ToolTypeWrite

	// ToolTypeEdit represents the Edit tool for modifying files.
	ToolTypeEdit

	// ToolTypeMultiEdit represents the MultiEdit tool for modifying multiple files.
	ToolTypeMultiEdit

	// ToolTypeRead represents the Read tool for reading files.
	ToolTypeRead

	// ToolTypeGlob represents the Glob tool for finding files by pattern.
	ToolTypeGlob

	// ToolTypeGrep represents the Grep tool for searching files.
	ToolTypeGrep
)

// ToolInput contains the raw tool input data.
type ToolInput struct {
	// Command is the shell command for Bash tool.
	Command string `json:"command,omitempty"`

	// FilePath is the file path for file operations.
	FilePath string `json:"file_path,omitempty"`

	// Path is an alternative field for file path.
	Path string `json:"path,omitempty"`

	// Content is the file content for Write tool.
	Content string `json:"content,omitempty"`

	// OldString is the string to replace for Edit tool.
	OldString string `json:"old_string,omitempty"`

	// NewString is the replacement string for Edit tool.
	NewString string `json:"new_string,omitempty"`

	// Additional fields stored as raw JSON.
	Additional map[string]json.RawMessage `json:"-"`
}

// Context represents the complete hook invocation context.
//
// A Context is constructed once per invocation from the process input stream
// and never mutated afterwards.
type Context struct {
	// EventType is the type of hook event.
	EventType EventType

	// ToolName is the name of the tool being invoked (tool events only).
	ToolName ToolType

	// ToolInput contains the tool-specific input parameters.
	ToolInput ToolInput

	// Prompt is the submitted prompt text (UserPromptSubmit events only).
	Prompt string

	// StopHookActive reports whether a stop hook decision is already active
	// in the current chain (Stop events only).
	StopHookActive bool

	// RawJSON contains the original JSON input for advanced parsing.
	RawJSON string

	// SessionID is the unique identifier for the Claude Code session.
	SessionID string

	// ToolUseID is the unique identifier for this tool invocation.
	ToolUseID string
}

// GetCommand returns the command from ToolInput.
func (c *Context) GetCommand() string {
	return c.ToolInput.Command
}

// GetFilePath returns the file path from ToolInput, preferring FilePath over Path.
func (c *Context) GetFilePath() string {
	if c.ToolInput.FilePath != "" {
		return c.ToolInput.FilePath
	}

	return c.ToolInput.Path
}

// GetContent returns the file content from ToolInput.
func (c *Context) GetContent() string {
	return c.ToolInput.Content
}

// IsBashTool returns true if the tool is Bash.
func (c *Context) IsBashTool() bool {
	return c.ToolName == ToolTypeBash
}

// IsFileTool returns true if the tool is a file operation (Write, Edit, MultiEdit).
func (c *Context) IsFileTool() bool {
	return c.ToolName == ToolTypeWrite ||
		c.ToolName == ToolTypeEdit ||
		c.ToolName == ToolTypeMultiEdit
}

// HasSessionID returns true if a session ID is present.
func (c *Context) HasSessionID() bool {
	return c.SessionID != ""
}
