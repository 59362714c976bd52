package generator

import (
	"context"
	"fmt"

	"hearthplan/internal/llm"
)

// llmGenerator implements Generator on top of an LLM client.
type llmGenerator struct {
	client llm.Client
}

// NewLLMGenerator creates a Generator backed by a language model.
func NewLLMGenerator(client llm.Client) Generator {
	return &llmGenerator{client: client}
}

func (g *llmGenerator) Propose(ctx context.Context, in Input) ([]Proposal, error) {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskScheduleDraft,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   buildUserPrompt(in),
	})
	if err != nil {
		return nil, fmt.Errorf("proposing placements: %w", err)
	}

	// Per-proposal validation happens later; here we only require a
	// structurally parseable array.
	proposals, err := llm.ExtractJSON[[]Proposal](resp.Text, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing placements: %w", err)
	}
	return proposals, nil
}
