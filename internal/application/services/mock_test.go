package services

import (
	"context"
	"encoding/json"
	"sync"
)

type transportCall struct {
	params         map[string]string
	method         string
	path           []string
	useSessionAuth bool
}

// Lock in case of t.Parallel call.
type mockTransport struct {
	err      error
	response json.RawMessage
	calls    []transportCall
	mu       sync.Mutex
}

func (m *mockTransport) Call(
	_ context.Context,
	method string,
	path []string,
	params map[string]string,
	useSessionAuth bool,
) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, transportCall{
		params:         params,
		method:         method,
		path:           path,
		useSessionAuth: useSessionAuth,
	})
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockTransport) last() transportCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return transportCall{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockTransport) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
