package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply. A non-nil Err is returned instead of
// content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Reply is a MockResponse carrying content.
func Reply(content string) MockResponse {
	return MockResponse{Content: json.RawMessage(content)}
}

// Fail is a MockResponse carrying err.
func Fail(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider replays scripted responses in order and records requests.
// Once the script runs out every call reports the provider unavailable.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockResponse
	requests []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if len(m.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.script[0]
	m.script = m.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return finish(req, next.Content, next.Usage, m.ModelID(), stopEnd)
}

func (m *MockProvider) ModelID() string { return ProviderMock }

// Push appends responses to the script.
func (m *MockProvider) Push(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// Requests returns a copy of the requests seen so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
