package evaluator

import (
	"errors"
	"fmt"
	"math"

	"realreturn/internal/calculator"
	"realreturn/internal/model"
)

// Evaluate computes the nominal, real and projected outcome of investing a
// fixed amount in a price series over a date range.
//
// The nominal return comes from the first and last closes; the annualized
// return is compounded over the range length in average years; the real
// return deflates it by the market's annualized inflation rate; the final
// value compounds the investment at the real rate.
//
// params.InterestRate is accepted but does not enter the formula (reserved
// for a future risk-adjustment term).
func Evaluate(prices model.Series, investment float64, r model.DateRange, params model.MarketParameters) (*model.InvestmentResult, error) {
	if prices.Len() < 2 {
		return nil, fmt.Errorf("insufficient data for %s: need at least 2 data points, got %d", prices.ID, prices.Len())
	}
	if investment <= 0 {
		return nil, errors.New("investment amount must be positive")
	}
	years := r.Years()
	if years <= 0 {
		return nil, errors.New("investment period must be positive")
	}

	initialPrice := prices.First()
	finalPrice := prices.Last()
	if initialPrice <= 0 {
		return nil, fmt.Errorf("non-positive initial price for %s", prices.ID)
	}

	totalReturn := (finalPrice - initialPrice) / initialPrice

	// Positive prices keep 1+totalReturn >= 0, so the fractional power is
	// well defined here.
	annualReturn := math.Pow(1+totalReturn, 1/years) - 1

	realAnnualReturn, err := calculator.RealReturn(annualReturn, params.InflationRate)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", prices.ID, err)
	}

	// A real return below -100% would put a negative base under a fractional
	// exponent; reject instead of producing NaN.
	if 1+realAnnualReturn < 0 {
		return nil, fmt.Errorf("evaluate %s: real annual return below -100%%", prices.ID)
	}

	finalValue := investment * math.Pow(1+realAnnualReturn, years)

	return &model.InvestmentResult{
		TotalNominalReturn: totalReturn,
		RealAnnualReturn:   realAnnualReturn,
		FinalValue:         finalValue,
	}, nil
}
