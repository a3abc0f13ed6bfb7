/*
Package tripweaver is an agentic trip planner: given a destination city and a
trip length, it drives an OpenAI-compatible chat model through a small set of
tools (live weather lookup, example flights, example hotels) and returns a
structured six-part plan.

# Concept

The model is the planner; the Go code is the harness. The agent loop sends
the conversation to the model, dispatches the tool calls it asks for against
a closed registry, feeds the results back, and repeats until the model
produces a final answer or the step budget runs out. The final answer is
parsed and validated against a fixed plan contract; an answer that fails the
contract is never partially rendered, the raw text is preserved for display
instead.

# Key Properties

  - Degraded operation over failure: a missing weather key or an unreachable
    weather provider yields an advisory string the model can plan around,
    never an aborted run.
  - Strict output contract: all six plan sections must be present and well
    shaped, or the result is flagged as unusable with the raw text intact.
  - Closed tool dispatch: the model can only reach the tools registered at
    startup, unknown tool names come back as tool errors and the run goes on.
  - A missing model credential is a blocking startup error; the planner is
    never constructed without one.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/tripweaver/tripweaver"
		"github.com/tripweaver/tripweaver/pkg/config"
		"github.com/tripweaver/tripweaver/pkg/domain"
	)

	func main() {
		cfg, err := config.Load("")
		if err != nil {
			log.Fatal(err)
		}

		planner, err := tripweaver.New(cfg)
		if err != nil {
			log.Fatal(err)
		}

		result, err := planner.PlanTrip(context.Background(), domain.TripRequest{City: "Paris", Days: 3})
		if err != nil {
			log.Fatal(err)
		}
		if result.OK() {
			fmt.Println(result.Parsed.CulturalSignificance)
		} else {
			fmt.Println(result.RawText)
		}
	}

The cmd/tripweaver binary wraps the same planner behind an HTML form and
JSON API (serve), a one-shot terminal renderer (plan) and a Model Context
Protocol server (mcp).
*/
package tripweaver
