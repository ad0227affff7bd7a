package provider

import (
	"context"
	"sync"
)

// MockProvider is a test double that answers from a fixed table. Phrases
// without an entry are omitted from the result, matching the partial-result
// contract of real backends.
type MockProvider struct {
	mu sync.Mutex

	// Translations maps source phrases to canned results.
	Translations map[string]string
	// Err, when set, is returned from every call.
	Err error

	// CallCount tracks the number of TranslateBatch calls.
	CallCount int
	// LastWords holds the words of the most recent call.
	LastWords []string
}

// NewMockProvider creates a mock with the given canned translations.
func NewMockProvider(translations map[string]string) *MockProvider {
	if translations == nil {
		translations = map[string]string{}
	}
	return &MockProvider{Translations: translations}
}

// TranslateBatch returns canned translations for the words it knows.
func (m *MockProvider) TranslateBatch(_ context.Context, words []string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastWords = append([]string(nil), words...)

	if m.Err != nil {
		return nil, m.Err
	}

	result := make(map[string]string)
	for _, w := range words {
		if t, ok := m.Translations[w]; ok {
			result[w] = t
		}
	}
	return result, nil
}

// Reset clears the recorded calls.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastWords = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
