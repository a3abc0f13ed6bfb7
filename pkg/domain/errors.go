package domain

import "errors"

// ErrInvalidRequest is returned when a trip request fails validation.
var ErrInvalidRequest = errors.New("invalid trip request")

// ErrModelCredentialMissing is returned when no model credential is
// configured. The planner must not be constructed in that case and the
// caller surfaces a blocking configuration error without any model call.
var ErrModelCredentialMissing = errors.New("model credential missing")

// ErrAgentExecution wraps failures raised by the model client or the tool
// dispatch during a run. It is propagated, never swallowed.
var ErrAgentExecution = errors.New("agent execution failed")
