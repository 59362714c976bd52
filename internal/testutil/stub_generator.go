package testutil

import (
	"context"
	"sync/atomic"

	"hearthplan/internal/generator"
)

// StubGenerator is a deterministic generator for tests. It returns the
// configured proposals or error and records every input it was called with.
type StubGenerator struct {
	Proposals []generator.Proposal
	Err       error

	calls  atomic.Int32
	inputs []generator.Input
}

func (s *StubGenerator) Propose(_ context.Context, in generator.Input) ([]generator.Proposal, error) {
	s.calls.Add(1)
	s.inputs = append(s.inputs, in)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Proposals, nil
}

// Calls returns how many times Propose was invoked.
func (s *StubGenerator) Calls() int {
	return int(s.calls.Load())
}

// LastInput returns the most recent generation input, or nil.
func (s *StubGenerator) LastInput() *generator.Input {
	if len(s.inputs) == 0 {
		return nil
	}
	return &s.inputs[len(s.inputs)-1]
}
