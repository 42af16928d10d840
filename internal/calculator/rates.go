package calculator

import (
	"errors"

	"realreturn/internal/model"
)

// monthsPerYear annualizes a mean monthly growth rate.
const monthsPerYear = 12

// AnnualizedGrowthRate reduces a monthly economic series to a single
// annualized rate: the mean of all period-over-period relative changes,
// multiplied by 12. Used for CPI-style index series.
func AnnualizedGrowthRate(s model.Series) (float64, error) {
	if s.Len() < 2 {
		return 0, errors.New("growth rate needs at least 2 data points")
	}
	vals := s.Values()
	sum := 0.0
	for i := 1; i < len(vals); i++ {
		if vals[i-1] == 0 {
			return 0, errors.New("growth rate undefined: zero value in series")
		}
		sum += (vals[i] - vals[i-1]) / vals[i-1]
	}
	mean := sum / float64(len(vals)-1)
	return mean * monthsPerYear, nil
}

// MeanLevel reduces a rate series reported in percent to a mean fractional
// rate: the mean of all values, divided by 100. Used for policy-rate series.
func MeanLevel(s model.Series) (float64, error) {
	if s.Len() == 0 {
		return 0, errors.New("mean level needs at least 1 data point")
	}
	sum := 0.0
	for _, v := range s.Values() {
		sum += v
	}
	return sum / float64(s.Len()) / 100, nil
}
