// Package mock is a canned text engine for tests.
package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/esmanureral/dental-ai-backend/internal/llm"
)

type Engine struct {
	// Reply, when set, is returned verbatim.
	Reply string

	// Err, when set, is returned from every call.
	Err error

	// Calls records the message batches seen, newest last.
	Calls [][]llm.Message
}

var _ llm.Engine = (*Engine)(nil)

func (e *Engine) GenerateText(ctx context.Context, messages []llm.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	e.Calls = append(e.Calls, messages)
	if e.Err != nil {
		return "", e.Err
	}
	if e.Reply != "" {
		return e.Reply, nil
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if strings.EqualFold(messages[i].Role, llm.RoleUser) {
			return fmt.Sprintf("mock: %s", messages[i].Content), nil
		}
	}
	return "mock: ok", nil
}
