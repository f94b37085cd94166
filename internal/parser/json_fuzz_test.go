package parser

import (
	"bytes"
	"testing"

	"github.com/hookguard/hookguard/pkg/hook"
)

func FuzzJSONParse(f *testing.F) {
	f.Add([]byte(`{"tool_name":"Bash","tool_input":{"command":"rm -rf /"}}`))
	f.Add([]byte(`{"tool":"Write","tool_input":{"file_path":"/tmp/test.txt"}}`))
	f.Add([]byte(`{"prompt":"delete all the things"}`))
	f.Add([]byte(`{"stop_hook_active":true}`))
	f.Add([]byte(`{"hook_event_name":"UserPromptSubmit","prompt":"hi"}`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"tool_name":"","tool_input":null}`))
	f.Add([]byte(`{invalid json`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`null`))
	f.Add([]byte(`"string"`))
	f.Add([]byte{})

	f.Fuzz(func(_ *testing.T, data []byte) {
		for _, eventType := range []hook.EventType{
			hook.EventTypeUnknown,
			hook.EventTypePreToolUse,
			hook.EventTypePostToolUse,
			hook.EventTypeUserPromptSubmit,
			hook.EventTypeStop,
		} {
			p := NewJSONParser(bytes.NewReader(data))

			ctx, err := p.Parse(eventType)
			if err == nil && ctx != nil {
				// Access all fields - should not panic
				_ = ctx.EventType
				_ = ctx.ToolName
				_ = ctx.ToolInput.Command
				_ = ctx.ToolInput.FilePath
				_ = ctx.ToolInput.Content
				_ = ctx.Prompt
				_ = ctx.StopHookActive
				_ = ctx.RawJSON
				_ = ctx.HasSessionID()
			}
		}
	})
}
