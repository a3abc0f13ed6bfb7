// Package agent runs the tool-calling loop against an OpenAI-compatible
// chat model and turns the model's final text into a validated trip plan.
//
// One run: the model receives the system prompt and the user request; it
// may emit tool calls, each of which is dispatched synchronously through
// the registry and appended to the working context; the model is invoked
// again until it answers with text instead of tool calls, or the step
// budget runs out (a non-fatal stop). The final text is then parsed and
// validated; validation failure is data, not an error.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	openai "github.com/sashabaranov/go-openai"
	"github.com/tripweaver/tripweaver/pkg/domain"
	"github.com/tripweaver/tripweaver/pkg/registry"
	"github.com/tripweaver/tripweaver/pkg/schema"
)

// ChatCompleter is the slice of the model client the agent uses.
// *openai.Client satisfies it; tests inject fakes.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Agent orchestrates a single request/response round with a tool-calling
// model, enforcing the plan output schema.
type Agent struct {
	client      ChatCompleter
	model       string
	temperature float32
	maxRounds   int
	tools       *registry.Registry
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent)

// WithTemperature sets the sampling temperature.
func WithTemperature(temp float32) Option {
	return func(a *Agent) { a.temperature = temp }
}

// WithMaxToolRounds sets the step budget. Exhausting it stops the run
// non-fatally: whatever text exists is returned as the raw answer.
func WithMaxToolRounds(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxRounds = n
		}
	}
}

// WithHooks installs lifecycle hooks for observability.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Agent) { a.hooks = hooks }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) { a.logger = l }
}

// New creates an agent bound to a model client and a tool registry.
// The caller is responsible for the model-credential precondition: an
// agent must not be constructed without one.
func New(client ChatCompleter, model string, tools *registry.Registry, opts ...Option) *Agent {
	a := &Agent{
		client:      client,
		model:       model,
		temperature: 0.7,
		maxRounds:   8,
		tools:       tools,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// PlanTrip executes one planning run. It returns an error only for
// request validation and agent execution failures; schema and JSON
// failures are reported inside the PlanResult.
func (a *Agent) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	if a.hooks.OnPlanStart != nil {
		a.hooks.OnPlanStart(ctx, &domain.PlanEvent{Type: domain.EventPlanStart, City: req.City, Days: req.Days})
	}

	result, err := a.run(ctx, req)

	if a.hooks.OnPlanEnd != nil {
		event := &domain.PlanEvent{
			Type:     domain.EventPlanEnd,
			City:     req.City,
			Days:     req.Days,
			Duration: time.Since(start),
			Outcome:  domain.OutcomeAgentFailed,
		}
		if err == nil {
			event.Outcome = domain.OutcomeRendered
			if result.ParseError != "" {
				event.Outcome = domain.OutcomeParseFailed
			}
		}
		a.hooks.OnPlanEnd(ctx, event)
	}

	return result, err
}

func (a *Agent) run(ctx context.Context, req domain.TripRequest) (*domain.PlanResult, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: userRequest(req.City, req.Days)},
	}
	toolDefs := a.toolDefinitions()
	transcript := &domain.Transcript{}

	var finalText string
	for round := 0; round < a.maxRounds; round++ {
		transcript.ModelRounds++
		if a.hooks.OnModelRound != nil {
			a.hooks.OnModelRound(ctx)
		}

		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       a.model,
			Temperature: a.temperature,
			Messages:    messages,
			Tools:       toolDefs,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrAgentExecution, err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("%w: model returned no choices", domain.ErrAgentExecution)
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			finalText = msg.Content
			break
		}

		messages = append(messages, msg)
		for _, tc := range msg.ToolCalls {
			toolMsg := a.dispatch(ctx, tc, transcript)
			messages = append(messages, toolMsg)
		}

		if round == a.maxRounds-1 {
			// Budget exhausted mid-loop: non-fatal stop, keep whatever
			// text the model produced so far.
			transcript.Truncated = true
			finalText = msg.Content
			a.logger.Warn("tool round budget exhausted", "city", req.City, "rounds", a.maxRounds)
		}
	}

	result := a.parse(finalText)
	result.Transcript = transcript
	return result, nil
}

// dispatch executes a single tool call through the registry and returns the
// tool message for the model context. Dispatch failures become error text
// the model can reason over; they never abort the run.
func (a *Agent) dispatch(ctx context.Context, tc openai.ToolCall, transcript *domain.Transcript) openai.ChatCompletionMessage {
	call := domain.ToolCall{ID: tc.ID, Name: tc.Function.Name}

	var args map[string]any
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return a.finishDispatch(ctx, call, domain.ToolResult{
				ID: tc.ID, IsError: true,
				Error: fmt.Sprintf("invalid tool arguments: %v", err),
			}, 0, transcript)
		}
	}
	call.Args = args

	if a.hooks.OnToolCall != nil {
		a.hooks.OnToolCall(ctx, &domain.ToolEvent{Type: domain.EventToolCall, ToolName: call.Name, Input: args})
	}

	start := time.Now()
	out, err := a.tools.Execute(ctx, call.Name, args)
	elapsed := time.Since(start)

	result := domain.ToolResult{ID: tc.ID, Result: out}
	if err != nil {
		result = domain.ToolResult{ID: tc.ID, IsError: true, Error: err.Error()}
	}
	return a.finishDispatch(ctx, call, result, elapsed, transcript)
}

func (a *Agent) finishDispatch(ctx context.Context, call domain.ToolCall, result domain.ToolResult, elapsed time.Duration, transcript *domain.Transcript) openai.ChatCompletionMessage {
	transcript.Entries = append(transcript.Entries, domain.TranscriptEntry{
		Round:    transcript.ModelRounds,
		Call:     call,
		Result:   result,
		Duration: elapsed,
	})

	if a.hooks.OnToolReturn != nil {
		a.hooks.OnToolReturn(ctx, &domain.ToolEvent{
			Type:     domain.EventToolReturn,
			ToolName: call.Name,
			Output:   result.Result,
			IsError:  result.IsError,
			Duration: elapsed,
		})
	}

	content := result.Error
	if !result.IsError {
		data, err := json.Marshal(result.Result)
		if err != nil {
			content = fmt.Sprintf("tool result not serializable: %v", err)
		} else {
			content = string(data)
		}
	}
	a.logger.Debug("tool dispatched", "tool", call.Name, "is_error", result.IsError, "duration", elapsed)

	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    content,
		ToolCallID: call.ID,
	}
}

func (a *Agent) toolDefinitions() []openai.Tool {
	defs := a.tools.Definitions()
	out := make([]openai.Tool, 0, len(defs))
	for _, t := range defs {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return out
}

// parse turns the model's final text into a validated TripPlan. The raw
// text is always preserved; any failure sets ParseError instead of
// returning an error.
func (a *Agent) parse(raw string) *domain.PlanResult {
	result := &domain.PlanResult{RawText: raw}

	text := stripFences(strings.TrimSpace(raw))
	if text == "" {
		result.ParseError = "model produced no final answer"
		return result
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		result.ParseError = fmt.Sprintf("final answer is not valid JSON: %v", err)
		return result
	}

	if err := schema.ValidatePlan(data); err != nil {
		result.ParseError = err.Error()
		return result
	}

	var plan domain.TripPlan
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &plan,
		TagName:          "mapstructure",
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		result.ParseError = fmt.Sprintf("plan decoder: %v", err)
		return result
	}
	if err := decoder.Decode(data); err != nil {
		result.ParseError = fmt.Sprintf("plan shape mismatch: %v", err)
		return result
	}

	result.Parsed = &plan
	return result
}

// stripFences removes a markdown code fence if the model ignored the
// no-fences instruction; the content inside is still validated strictly.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
