package testutil

import (
	"context"
	"sync"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/exchange"
)

// MockExchangeClient is a mock implementation of exchange.Client for testing.
// It returns a configurable quote instead of calling the rate service.
type MockExchangeClient struct {
	mu sync.Mutex
	// MockQuote is the quote returned from Latest
	MockQuote exchange.Quote
	// MockError is the error returned from Latest
	MockError error
	// callCount tracks how many quotes were requested
	callCount int
}

// NewMockExchangeClient creates a mock rate service quoting USD against a few
// common currencies.
func NewMockExchangeClient() *MockExchangeClient {
	return &MockExchangeClient{
		MockQuote: exchange.Quote{
			Amount: 1.0,
			Base:   "USD",
			Date:   "2024-01-02",
			Rates: map[string]float64{
				"EUR": 0.92,
				"GBP": 0.79,
				"SEK": 10.42,
			},
		},
	}
}

// Latest returns the configured quote or error.
func (m *MockExchangeClient) Latest(_ context.Context, _ string) (exchange.Quote, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.MockError != nil {
		return exchange.Quote{}, m.MockError
	}
	return m.MockQuote, nil
}

// Calls reports how many quotes were requested.
func (m *MockExchangeClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// WithRates replaces the quote's rate map.
func (m *MockExchangeClient) WithRates(rates map[string]float64) *MockExchangeClient {
	m.MockQuote.Rates = rates
	return m
}

// WithBase sets the base currency the quote claims to answer for.
func (m *MockExchangeClient) WithBase(base string) *MockExchangeClient {
	m.MockQuote.Base = base
	return m
}

// WithError configures the mock to fail every quote with err.
func (m *MockExchangeClient) WithError(err error) *MockExchangeClient {
	m.MockError = err
	return m
}
