package fetch

import (
	"context"

	"realreturn/internal/model"
)

// Fetcher defines the interface for fetching a time-indexed numeric series
// from an external data source.
type Fetcher interface {
	FetchSeries(ctx context.Context, id string, r model.DateRange) (model.Series, error)
	Name() string
}
