package middleware

import (
	"sync"

	"github.com/heartmarshall/material-tracker/internal/auth"
)

// tokenParserMock is a hand-written mock of the tokenParser interface.
type tokenParserMock struct {
	ParseFunc func(token string) (auth.Identity, error)

	calls struct {
		Parse []struct {
			Token string
		}
	}
	mu sync.RWMutex
}

func (m *tokenParserMock) Parse(token string) (auth.Identity, error) {
	m.mu.Lock()
	m.calls.Parse = append(m.calls.Parse, struct {
		Token string
	}{token})
	m.mu.Unlock()
	return m.ParseFunc(token)
}

func (m *tokenParserMock) ParseCalls() []struct {
	Token string
} {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Parse
}
