package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fredServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFREDFetcher_ParsesCSV(t *testing.T) {
	body := "observation_date,CPIAUCSL\n2021-01-01,261.582\n2021-02-01,.\n2021-03-01,264.877\n"
	srv := fredServer(t, body, http.StatusOK)

	f := NewFREDFetcher("")
	f.BaseURL = srv.URL
	s, err := f.FetchSeries(context.Background(), "CPIAUCSL", testRange())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 points (missing observation skipped), got %d", s.Len())
	}
	if s.First() != 261.582 || s.Last() != 264.877 {
		t.Errorf("expected 261.582 and 264.877, got %.3f and %.3f", s.First(), s.Last())
	}
}

func TestFREDFetcher_NoObservations(t *testing.T) {
	body := "observation_date,CPIAUCSL\n"
	srv := fredServer(t, body, http.StatusOK)

	f := NewFREDFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "CPIAUCSL", testRange()); err == nil {
		t.Error("expected error for empty observation set")
	}
}

func TestFREDFetcher_BadStatus(t *testing.T) {
	srv := fredServer(t, "not found", http.StatusNotFound)

	f := NewFREDFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "NOSUCHSERIES", testRange()); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestFREDFetcher_MalformedValue(t *testing.T) {
	body := "observation_date,FEDFUNDS\n2021-01-01,abc\n"
	srv := fredServer(t, body, http.StatusOK)

	f := NewFREDFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchSeries(context.Background(), "FEDFUNDS", testRange()); err == nil {
		t.Error("expected error for malformed value")
	}
}
