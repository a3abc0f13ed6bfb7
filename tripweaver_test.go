package tripweaver_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tripweaver/tripweaver"
	"github.com/tripweaver/tripweaver/pkg/config"
	"github.com/tripweaver/tripweaver/pkg/domain"
)

// scriptedClient plays back canned chat completions, one per model round.
type scriptedClient struct {
	responses []openai.ChatCompletionResponse
	requests  []openai.ChatCompletionRequest
}

func (s *scriptedClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return openai.ChatCompletionResponse{}, errors.New("no scripted response left")
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func toolCallResponse(calls ...openai.ToolCall) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, ToolCalls: calls}},
		},
	}
}

func textResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

const finalAnswer = `{
	"cultural_significance": "Paris has shaped European art and thought for centuries.",
	"weather": "Clear sky, around 18°C",
	"best_time_to_visit": "Late spring",
	"flights": [{"airline": "Example Air", "from": "Your city", "to": "Paris", "price_usd": 650}],
	"hotels": [{"name": "Paris Grand Plaza", "stars": 5, "price_per_night_usd": 260}],
	"itinerary": [{"day": 1, "title": "Arrival", "description": "Louvre at dusk."}]
}`

func testConfig() *config.Config {
	return &config.Config{
		ModelBaseURL:  "http://unused.invalid",
		ModelName:     "test-model",
		MaxToolRounds: 8,
		Temperature:   0.7,
	}
}

func TestNew_MissingModelCredential(t *testing.T) {
	_, err := tripweaver.New(testConfig())
	if !errors.Is(err, domain.ErrModelCredentialMissing) {
		t.Fatalf("Expected ErrModelCredentialMissing, got %v", err)
	}
}

func TestPlanTrip_EndToEnd(t *testing.T) {
	// Fake weather provider
	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, `{"weather": [{"description": "clear sky"}], "main": {"temp": 18.0, "feels_like": 17.2}}`)
		case "/forecast":
			fmt.Fprint(w, `{"list": [{"main": {"temp": 12.0}, "weather": [{"description": "clear sky"}]}]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer weatherSrv.Close()

	model := &scriptedClient{responses: []openai.ChatCompletionResponse{
		toolCallResponse(
			openai.ToolCall{
				ID:       "call-1",
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: "lookup_weather", Arguments: `{"city": "Paris"}`},
			},
			openai.ToolCall{
				ID:       "call-2",
				Type:     openai.ToolTypeFunction,
				Function: openai.FunctionCall{Name: "list_flights", Arguments: `{"city": "Paris"}`},
			},
		),
		textResponse(finalAnswer),
	}}

	cfg := testConfig()
	cfg.WeatherAPIKey = "test-key"
	cfg.WeatherBaseURL = weatherSrv.URL

	planner, err := tripweaver.New(cfg, tripweaver.WithChatClient(model))
	if err != nil {
		t.Fatalf("Failed to initialize planner: %v", err)
	}
	if planner.Registry() == nil {
		t.Fatal("Expected the planner to expose its tool registry")
	}

	result, err := planner.PlanTrip(context.Background(), domain.TripRequest{City: "Paris", Days: 3})
	if err != nil {
		t.Fatalf("PlanTrip failed: %v", err)
	}
	if !result.OK() {
		t.Fatalf("Expected a parsed plan, got parse error %q", result.ParseError)
	}

	if got := result.Parsed.BestTimeToVisit; got != "Late spring" {
		t.Errorf("Expected best_time_to_visit 'Late spring', got %q", got)
	}
	if len(result.Parsed.Flights) != 1 || result.Parsed.Flights[0].Airline != "Example Air" {
		t.Errorf("Unexpected flights: %+v", result.Parsed.Flights)
	}

	// The live weather result must have been fed back to the model.
	if result.Transcript == nil || len(result.Transcript.Entries) != 2 {
		t.Fatalf("Expected 2 transcript entries, got %+v", result.Transcript)
	}
	weatherOut := fmt.Sprintf("%v", result.Transcript.Entries[0].Result.Result)
	if !strings.Contains(weatherOut, "18.0") {
		t.Errorf("Expected live weather (18.0) in tool output, got %q", weatherOut)
	}

	if len(model.requests) != 2 {
		t.Fatalf("Expected 2 model rounds, got %d", len(model.requests))
	}
	if len(model.requests[0].Tools) != 3 {
		t.Errorf("Expected 3 tool definitions sent to the model, got %d", len(model.requests[0].Tools))
	}
}

func TestToolRegistry_KeylessWeatherDegrades(t *testing.T) {
	reg := tripweaver.NewToolRegistry(testConfig(), nil, nil)

	out, err := reg.Execute(context.Background(), "lookup_weather", map[string]any{"city": "Paris"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(fmt.Sprintf("%v", out), "no weather API key") {
		t.Errorf("Expected the keyless advisory, got %v", out)
	}
}
