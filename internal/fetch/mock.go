package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"realreturn/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Data maps a series id to its values; calls are recorded for assertions.
// Safe for concurrent use.
type MockFetcher struct {
	Data map[string][]float64
	Err  map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, id string, r model.DateRange) (model.Series, error) {
	m.mu.Lock()
	m.calls = append(m.calls, id)
	m.mu.Unlock()

	if err, ok := m.Err[id]; ok {
		return model.Series{}, err
	}
	vals, ok := m.Data[id]
	if !ok {
		return model.Series{}, fmt.Errorf("mock: no data for %s", id)
	}
	return SeriesFromValues(id, r.Start, vals), nil
}

// Calls returns a copy of the recorded fetch ids in call order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// SeriesFromValues builds a series with evenly spaced monthly timestamps,
// for mocks and tests.
func SeriesFromValues(id string, start time.Time, vals []float64) model.Series {
	points := make([]model.Point, len(vals))
	for i, v := range vals {
		points[i] = model.Point{Time: start.AddDate(0, i, 0), Value: v}
	}
	return model.Series{ID: id, Points: points}
}
