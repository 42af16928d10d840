package calculator

import (
	"math"
	"testing"
	"time"

	"realreturn/internal/model"
)

func monthlySeries(id string, vals []float64) model.Series {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.Point, len(vals))
	for i, v := range vals {
		points[i] = model.Point{Time: start.AddDate(0, i, 0), Value: v}
	}
	return model.Series{ID: id, Points: points}
}

func TestAnnualizedGrowthRate_MonthlyCPI(t *testing.T) {
	s := monthlySeries("CPI", []float64{100, 101, 102})
	got, err := AnnualizedGrowthRate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// mean of the two successive relative changes, annualized
	want := (1.0/100 + 1.0/101) / 2 * 12
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %.10f, got %.10f", want, got)
	}
}

func TestAnnualizedGrowthRate_FlatSeries(t *testing.T) {
	s := monthlySeries("CPI", []float64{100, 100, 100})
	got, err := AnnualizedGrowthRate(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("expected 0 for flat series, got %.10f", got)
	}
}

func TestAnnualizedGrowthRate_InsufficientData(t *testing.T) {
	for _, vals := range [][]float64{{}, {100}} {
		if _, err := AnnualizedGrowthRate(monthlySeries("CPI", vals)); err == nil {
			t.Errorf("expected error for %d-point series", len(vals))
		}
	}
}

func TestAnnualizedGrowthRate_ZeroValue(t *testing.T) {
	if _, err := AnnualizedGrowthRate(monthlySeries("CPI", []float64{0, 100})); err == nil {
		t.Error("expected error for zero value in series")
	}
}

func TestMeanLevel(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want float64
	}{
		{"single value", []float64{15}, 0.15},
		{"mean of two", []float64{10, 20}, 0.15},
		{"policy rate path", []float64{1, 2, 3}, 0.02},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MeanLevel(monthlySeries("RATE", tt.vals))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("expected %.4f, got %.4f", tt.want, got)
			}
		})
	}
}

func TestMeanLevel_EmptySeries(t *testing.T) {
	if _, err := MeanLevel(monthlySeries("RATE", nil)); err == nil {
		t.Error("expected error for empty series")
	}
}
