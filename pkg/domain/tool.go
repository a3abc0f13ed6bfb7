package domain

import "time"

// ToolCall represents a request from the model to execute one named tool.
// Compatible with OpenAI tool call schemas.
type ToolCall struct {
	ID   string         `json:"id" yaml:"id" mapstructure:"id"`     // Unique ID for this specific call (from the model)
	Name string         `json:"name" yaml:"name" mapstructure:"name"` // Tool name to dispatch on
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`
}

// ToolResult represents the output of a single tool invocation. A tool that
// degrades to a fallback string still produces a successful result; IsError
// is reserved for dispatch failures (unknown tool, bad arguments).
type ToolResult struct {
	ID      string `json:"id"` // Must match the ToolCall.ID
	Result  any    `json:"result,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TranscriptEntry records one tool round of a planning run.
type TranscriptEntry struct {
	Round    int           `json:"round"`
	Call     ToolCall      `json:"call"`
	Result   ToolResult    `json:"result"`
	Duration time.Duration `json:"duration"`
}

// Transcript is the ordered record of tool calls and model rounds produced
// during one planning run. It exists only for the duration of the run and
// is retained solely for debugging display.
type Transcript struct {
	ModelRounds int               `json:"model_rounds"`
	Entries     []TranscriptEntry `json:"entries,omitempty"`
	Truncated   bool              `json:"truncated,omitempty"` // step budget exhausted
}
