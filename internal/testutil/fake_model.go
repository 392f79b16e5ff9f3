package testutil

import (
	"context"
	"sync"

	"github.com/rowan/character-forge/internal/generation"
)

// FakeModelClient stands in for the external generation service. It records
// every request so tests can assert on call counts (e.g. that input
// validation rejected a request before any network activity).
type FakeModelClient struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     []generation.Request
}

func NewFakeModelClient() *FakeModelClient {
	return &FakeModelClient{}
}

// Respond queues payloads to return in order; the last one repeats.
func (f *FakeModelClient) Respond(payloads ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = payloads
	f.err = nil
}

// Fail makes every call return err.
func (f *FakeModelClient) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *FakeModelClient) GenerateJSON(_ context.Context, req generation.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "{}", nil
	}
	payload := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return payload, nil
}

// Calls returns a copy of every recorded request.
func (f *FakeModelClient) Calls() []generation.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]generation.Request(nil), f.calls...)
}

func (f *FakeModelClient) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
