// Package llm defines the text-generation engine behind the chatbot and
// the narrative generator. Callers hold a nil Engine when no provider is
// configured and branch on that, so "enhancement available" is a checked
// condition rather than a caught failure.
package llm

import "context"

type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Engine interface {
	GenerateText(ctx context.Context, messages []Message) (string, error)
}
