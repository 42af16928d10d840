package model

// MarketParameters configures one equity market evaluation.
//
// InterestRate is carried alongside InflationRate but does not enter the
// current return formula; it is reserved for a future risk-adjustment term.
type MarketParameters struct {
	Name          string
	Ticker        string
	InflationRate float64
	InterestRate  float64
}

// InvestmentResult is the outcome of evaluating one market. Created once per
// evaluation, never mutated.
type InvestmentResult struct {
	TotalNominalReturn float64
	RealAnnualReturn   float64
	FinalValue         float64
}

// MarketOutcome pairs a market with its result, the final value converted
// back to the report currency.
type MarketOutcome struct {
	Name       string
	Ticker     string
	Result     InvestmentResult
	FinalLocal float64
}

// Comparison is the full output of one run.
type Comparison struct {
	Amount      float64
	Currency    string
	Base        string
	Range       DateRange
	InitialRate float64
	FinalRate   float64
	Markets     []MarketOutcome
}
