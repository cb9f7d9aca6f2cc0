// Package llmtest provides an in-memory llm.LLM for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/helmcode/ticket-ai/pkg/llm"
)

// Fake records every request and answers from a fixed reply or Err.
type Fake struct {
	Reply string
	Err   error
	// Respond, when set, takes precedence over Reply.
	Respond func(req *llm.Request) (*llm.Response, error)

	mu       sync.Mutex
	requests []*llm.Request
}

func (f *Fake) Chat(_ context.Context, req *llm.Request) (*llm.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Respond != nil {
		return f.Respond(req)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return &llm.Response{Choices: []llm.Choice{{Content: f.Reply}}}, nil
}

func (f *Fake) Name() string  { return "fake" }
func (f *Fake) Model() string { return "fake-model" }

// Calls returns how many requests were made.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests returns a copy of the recorded requests.
func (f *Fake) Requests() []*llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*llm.Request(nil), f.requests...)
}
