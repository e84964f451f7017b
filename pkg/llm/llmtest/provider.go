// Package llmtest provides a canned LLM provider for tests.
package llmtest

import (
	"context"

	"op-mental-be/pkg/llm"
)

// StubProvider answers every call with Response, or fails with Err.
// It records the last prompt so tests can assert on prompt assembly.
type StubProvider struct {
	Response   string
	Err        error
	LastPrompt string
}

var _ llm.LLMProvider = &StubProvider{}

func (p *StubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) > 0 {
		p.LastPrompt = history[len(history)-1].Content
	}
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}

func (p *StubProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	p.LastPrompt = prompt
	if p.Err != nil {
		return "", p.Err
	}
	return p.Response, nil
}
