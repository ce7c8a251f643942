package llm

import "context"

// Prompt is one drafting request: a system contract plus a user payload.
type Prompt struct {
	System string
	User   string
}

// Drafter defines the interface for turning a prompt into raw model output.
// Implementations are expected to return the model text verbatim; cleaning
// and JSON extraction happen in the caller.
type Drafter interface {
	Draft(ctx context.Context, p Prompt) (string, error)
}
