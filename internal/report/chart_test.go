package report

import (
	"strings"
	"testing"

	"realreturn/internal/model"
)

func countBars(line string) int {
	n := 0
	for _, r := range line {
		if r == '█' {
			n++
		}
	}
	return n
}

func TestBarChart_ScalesToLargestValue(t *testing.T) {
	out := BarChart(testComparison())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 bars, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "TRY") {
		t.Errorf("expected currency in header, got %q", lines[0])
	}

	bist := countBars(lines[1])
	sp := countBars(lines[2])
	if bist != 40 {
		t.Errorf("expected largest value to fill 40 cells, got %d", bist)
	}
	// 12100/15000 of the full width
	if sp != 32 {
		t.Errorf("expected 32 cells for the smaller value, got %d", sp)
	}
}

func TestBarChart_Empty(t *testing.T) {
	if out := BarChart(&model.Comparison{Currency: "TRY"}); out != "" {
		t.Errorf("expected empty chart for no markets, got %q", out)
	}
}
