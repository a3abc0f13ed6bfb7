/*
Package domain contains the core domain models for the Tripweaver planner.

It defines the request/response contract between the UI adapters and the
planning agent: the trip request, the six-field trip plan, the tool call
and tool result records exchanged during one planning run, and the error
taxonomy surfaced to callers. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - TripRequest: the user's submission (destination city, number of days).
  - TripPlan: the structured six-field plan the agent must produce.
  - PlanResult: the raw model text plus the parsed plan (or the parse error).
  - Transcript: the ordered record of tool calls made during one run.
*/
package domain
