package ai

import (
	"context"
)

// QuestionDrafter is the language-model collaborator consumed by the
// question generator. It is untrusted and potentially unavailable: callers
// guard it with a timeout and fall back to the static question bank on any
// error.
type QuestionDrafter interface {
	// Draft sends the instruction schema and prompt and returns the raw
	// model response text.
	Draft(ctx context.Context, system, prompt string) (string, error)
	Model() string
}
