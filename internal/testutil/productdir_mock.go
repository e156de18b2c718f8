package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/mvandermeer/Product-Package-Catalog-Backend/internal/productdir"
)

// MockProductClient is a mock implementation of productdir.Client for testing.
// It serves prices from an in-memory map instead of calling the product
// directory. The mock is safe for concurrent use, since the price aggregator
// fans lookups out across goroutines.
type MockProductClient struct {
	mu sync.Mutex
	// Prices maps product IDs to their base-currency price
	Prices map[string]float64
	// MockError, when set, is returned from every lookup
	MockError error
	// callCount tracks how many lookups were made
	callCount int
}

// NewMockProductClient creates a mock directory with a couple of priced
// products suitable for most tests.
func NewMockProductClient() *MockProductClient {
	return &MockProductClient{
		Prices: map[string]float64{
			"7dca868a-4a23-4d64-8cfb-b5e0a0e67d96": 899.0,
			"e2d1f56f-65b1-4c18-bc10-57bb6abf0b37": 999.0,
		},
	}
}

// GetProduct resolves a product from the configured price map.
// Unknown IDs fail the same way an absent directory product does.
func (m *MockProductClient) GetProduct(_ context.Context, id string) (productdir.Product, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.MockError != nil {
		return productdir.Product{}, m.MockError
	}

	price, ok := m.Prices[id]
	if !ok {
		return productdir.Product{}, fmt.Errorf("product %s not found in directory", id)
	}

	return productdir.Product{ID: id, UsdPrice: price}, nil
}

// Calls reports how many lookups were made.
func (m *MockProductClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// WithPrices replaces the price map.
func (m *MockProductClient) WithPrices(prices map[string]float64) *MockProductClient {
	m.Prices = prices
	return m
}

// WithError configures the mock to fail every lookup with err.
func (m *MockProductClient) WithError(err error) *MockProductClient {
	m.MockError = err
	return m
}
