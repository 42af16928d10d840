package calculator

import (
	"fmt"

	"realreturn/internal/model"
)

// Converter converts amounts between the report currency and the base
// currency using the first and last observations of a currency-pair series.
// The asymmetry is deliberate: funds enter the base currency at the rate in
// force at the start of the period and leave it at the rate in force at the
// end.
type Converter struct {
	initialRate float64
	finalRate   float64
}

// NewConverter builds a Converter from a currency-pair series quoted as
// report-currency units per base-currency unit (e.g. TRY per USD).
func NewConverter(pair model.Series) (*Converter, error) {
	if pair.Len() < 2 {
		return nil, fmt.Errorf("currency pair %s: need at least 2 data points, got %d", pair.ID, pair.Len())
	}
	return &Converter{initialRate: pair.First(), finalRate: pair.Last()}, nil
}

// ToBase converts an amount into the base currency at the start-of-period rate.
func (c *Converter) ToBase(amount float64) float64 { return amount / c.initialRate }

// FromBase converts an amount back at the end-of-period rate.
func (c *Converter) FromBase(amount float64) float64 { return amount * c.finalRate }

// InitialRate returns the start-of-period exchange rate.
func (c *Converter) InitialRate() float64 { return c.initialRate }

// FinalRate returns the end-of-period exchange rate.
func (c *Converter) FinalRate() float64 { return c.finalRate }
