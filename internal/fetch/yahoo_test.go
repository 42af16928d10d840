package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realreturn/internal/model"
)

func testRange() model.DateRange {
	return model.DateRange{
		Start: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func yahooServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestYahooFetcher_ParsesCloses(t *testing.T) {
	body := `{"chart":{"result":[{"timestamp":[1609459200,1609545600,1609632000],
		"indicators":{"quote":[{"close":[100.5,null,102.25]}]}}],"error":null}}`
	srv := yahooServer(t, body, http.StatusOK)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	s, err := f.FetchSeries(context.Background(), "XU100.IS", testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 points (null bar skipped), got %d", s.Len())
	}
	if s.First() != 100.5 || s.Last() != 102.25 {
		t.Errorf("expected closes 100.5 and 102.25, got %.2f and %.2f", s.First(), s.Last())
	}
	if !s.Points[0].Time.Before(s.Points[1].Time) {
		t.Error("expected points sorted by ascending timestamp")
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`
	srv := yahooServer(t, body, http.StatusOK)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "BOGUS", testRange()); err == nil {
		t.Error("expected error for api error payload")
	}
}

func TestYahooFetcher_EmptyResult(t *testing.T) {
	body := `{"chart":{"result":[],"error":null}}`
	srv := yahooServer(t, body, http.StatusOK)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "XU100.IS", testRange()); err == nil {
		t.Error("expected error for empty result")
	}
}

func TestYahooFetcher_BadStatus(t *testing.T) {
	srv := yahooServer(t, "too many requests", http.StatusTooManyRequests)

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "^GSPC", testRange()); err == nil {
		t.Error("expected error for non-200 status")
	}
}
