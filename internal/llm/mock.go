package llm

import (
	"context"
	"sync"
	"time"
)

// MockClient is a scripted Client for tests and offline use.
type MockClient struct {
	Err      error
	Response string
	requests []Request
	Delay    time.Duration
	mu       sync.Mutex
}

// NewMockClient returns a client that always answers with response.
func NewMockClient(response string) *MockClient {
	return &MockClient{Response: response}
}

// Complete records the request and returns the scripted answer.
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	delay, response, err := m.Delay, m.Response, m.Err
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	return response, nil
}

// Requests returns a copy of every request received.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Calls returns the number of requests received.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
