package model

import (
	"fmt"
	"time"
)

// daysPerYear is the average Gregorian year length used for annualization.
const daysPerYear = 365.25

// DateRange bounds every series fetch and return calculation.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange builds a DateRange from two ISO 8601 dates (YYYY-MM-DD).
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date %q: %w", start, err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date %q: %w", end, err)
	}
	r := DateRange{Start: s, End: e}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate checks the start < end invariant.
func (r DateRange) Validate() error {
	if !r.Start.Before(r.End) {
		return fmt.Errorf("date range: start %s must be before end %s",
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	return nil
}

// Years returns the range length in average years.
func (r DateRange) Years() float64 {
	return r.End.Sub(r.Start).Hours() / 24 / daysPerYear
}
