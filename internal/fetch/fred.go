package fetch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"realreturn/internal/model"
)

const fredBaseURL = "https://fred.stlouisfed.org"

// FREDFetcher downloads economic series (CPI, policy rates) from the FRED
// CSV export endpoint. No API key required.
type FREDFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFREDFetcher creates a new FRED fetcher with optional proxy support.
func NewFREDFetcher(proxyURL string) *FREDFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FREDFetcher{
		BaseURL: fredBaseURL,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FREDFetcher) Name() string { return "fred" }

// FetchSeries downloads observations for the series id between the range
// bounds. The endpoint returns a two-column CSV (observation_date, <id>)
// with "." marking missing observations.
func (f *FREDFetcher) FetchSeries(ctx context.Context, id string, r model.DateRange) (model.Series, error) {
	u := fmt.Sprintf("%s/graph/fredgraph.csv?id=%s&cosd=%s&coed=%s",
		f.BaseURL, url.QueryEscape(id),
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Series{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.Series{}, fmt.Errorf("fred fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return model.Series{}, fmt.Errorf("fred %s: status %d, body: %s", id, resp.StatusCode, string(body))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return model.Series{}, fmt.Errorf("fred %s: read header: %w", id, err)
	}
	if len(header) != 2 {
		return model.Series{}, fmt.Errorf("fred %s: unexpected header %v", id, header)
	}

	var points []model.Point
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Series{}, fmt.Errorf("fred %s: read csv: %w", id, err)
		}
		if rec[1] == "." {
			continue // missing observation
		}
		ts, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			return model.Series{}, fmt.Errorf("fred %s: parse date %q: %w", id, rec[0], err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return model.Series{}, fmt.Errorf("fred %s: parse value %q: %w", id, rec[1], err)
		}
		points = append(points, model.Point{Time: ts, Value: v})
	}

	if len(points) == 0 {
		return model.Series{}, fmt.Errorf("fred %s: no observations returned", id)
	}
	return model.Series{ID: id, Points: points}, nil
}
