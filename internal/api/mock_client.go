package api

import (
	"context"
	"sync"

	"github.com/diogo/symptrack/internal/models"
)

// MockClient is a mock implementation of ServiceClient for testing
type MockClient struct {
	mu sync.Mutex

	// Mock return values
	Catalog     models.Catalog
	CatalogErr  error
	Result      *models.PredictResult
	PredictErr  error
	PredictFunc func(ctx context.Context, text string) (*models.PredictResult, error)
	URL         string

	// Call counters/recorders
	FetchCalls   int
	PredictCalls int
	Prompts      []string
	CloseCalled  bool
}

// Ensure MockClient implements ServiceClient
var _ ServiceClient = (*MockClient)(nil)

func (m *MockClient) FetchSymptoms(ctx context.Context) (models.Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FetchCalls++
	if m.CatalogErr != nil {
		return nil, m.CatalogErr
	}
	return m.Catalog, nil
}

func (m *MockClient) Predict(ctx context.Context, text string) (*models.PredictResult, error) {
	m.mu.Lock()
	m.PredictCalls++
	m.Prompts = append(m.Prompts, text)
	fn := m.PredictFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}
	return m.Result, m.PredictErr
}

func (m *MockClient) BaseURL() string {
	if m.URL == "" {
		return "http://mock"
	}
	return m.URL
}

func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
}

// Calls returns the number of Predict calls so far
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.PredictCalls
}
