package calculator

import "errors"

// RealReturn adjusts a nominal annual return for inflation:
// (1 + nominal) / (1 + inflation) - 1.
//
// An inflation rate at or below -100% would make the formula divide by zero
// or flip sign, so it is rejected instead of letting ±Inf/NaN propagate.
func RealReturn(nominal, inflation float64) (float64, error) {
	if inflation <= -1 {
		return 0, errors.New("inflation rate must be greater than -100%")
	}
	return (1+nominal)/(1+inflation) - 1, nil
}
