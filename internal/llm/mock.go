package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply of a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// JSONResponse is a MockResponse carrying raw JSON text.
func JSONResponse(text string) MockResponse {
	return MockResponse{Content: json.RawMessage(text)}
}

// ErrorResponse is a MockResponse that fails with err.
func ErrorResponse(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider is a deterministic Provider for tests and the "mock"
// provider setting. Replies are served FIFO; every request is recorded.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	responder func(Request) MockResponse
	calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// SetResponder installs fn to answer requests once the queue is drained.
func (m *MockProvider) SetResponder(fn func(Request) MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responder = fn
}

// Generate returns the next canned response. Once the queue is drained it
// asks the responder, or fails with ErrProviderUnavailable when none is set. Context cancellation is honoured before a reply is
// consumed.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var resp MockResponse
	switch {
	case len(m.responses) > 0:
		resp = m.responses[0]
		m.responses = m.responses[1:]
	case m.responder != nil:
		resp = m.responder(req)
	default:
		return nil, &ErrProviderUnavailable{Err: errMockExhausted}
	}

	if resp.Err != nil {
		return nil, resp.Err
	}

	if req.Schema != nil && len(resp.Content) > 0 {
		if err := validateResponse(req.Schema, resp.Content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}

// LastCall returns the most recent request, or false if none was made.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Request{}, false
	}
	return m.calls[len(m.calls)-1], true
}

type mockError string

func (e mockError) Error() string { return string(e) }

const errMockExhausted = mockError("mock provider has no more responses")
