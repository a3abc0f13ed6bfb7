package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPlanStart  EventType = "plan_start"
	EventPlanEnd    EventType = "plan_end"
	EventToolCall   EventType = "tool_call"
	EventToolReturn EventType = "tool_return"
)

// Outcome labels the terminal state of one planning request.
type Outcome string

const (
	OutcomeRendered    Outcome = "rendered"
	OutcomeParseFailed Outcome = "parse_failed"
	OutcomeAgentFailed Outcome = "agent_failed"
)

// PlanEvent represents the start or end of a planning run.
type PlanEvent struct {
	Type     EventType     `json:"type"`
	City     string        `json:"city"`
	Days     int           `json:"days"`
	Outcome  Outcome       `json:"outcome,omitempty"` // set on plan_end
	Duration time.Duration `json:"duration,omitempty"`
}

// ToolEvent represents a tool execution within a run.
type ToolEvent struct {
	Type     EventType     `json:"type"`
	ToolName string        `json:"tool_name"`
	Input    any           `json:"input,omitempty"`
	Output   any           `json:"output,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for planner observability. All hooks are
// optional; nil hooks are skipped.
type LifecycleHooks struct {
	OnPlanStart  func(context.Context, *PlanEvent)
	OnPlanEnd    func(context.Context, *PlanEvent)
	OnToolCall   func(context.Context, *ToolEvent)
	OnToolReturn func(context.Context, *ToolEvent)
	OnModelRound func(context.Context)
}
