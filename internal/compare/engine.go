package compare

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"realreturn/internal/calculator"
	"realreturn/internal/evaluator"
	"realreturn/internal/fetch"
	"realreturn/internal/model"
)

// MarketSpec names the data sources behind one market evaluation.
type MarketSpec struct {
	Name            string
	Ticker          string
	InflationSeries string
	InterestSeries  string
}

// Engine runs the full comparison: currency conversion, economic and equity
// fetches, rate aggregation, evaluation, conversion back.
type Engine struct {
	Markets  fetch.Fetcher // equity indices and currency pairs
	Economic fetch.Fetcher // inflation and interest-rate series
	Pair     string        // currency-pair symbol, report currency per base unit
	Currency string        // report currency code
	Base     string        // base currency code
	Specs    []MarketSpec
}

// NewEngine creates a comparison engine.
func NewEngine(markets, economic fetch.Fetcher, pair, currency, base string, specs []MarketSpec) *Engine {
	return &Engine{
		Markets:  markets,
		Economic: economic,
		Pair:     pair,
		Currency: currency,
		Base:     base,
		Specs:    specs,
	}
}

// fetched holds the raw series gathered for one market.
type fetched struct {
	inflation model.Series
	interest  model.Series
	prices    model.Series
}

// Run executes one comparison. Any fetch or calculation failure is terminal:
// no partial report is produced.
//
// The currency pair is fetched first, alone; if it is unavailable the run
// aborts before any economic or equity fetch is attempted. The remaining six
// fetches are independent and run concurrently, joined before aggregation.
func (e *Engine) Run(ctx context.Context, amount float64, r model.DateRange) (*model.Comparison, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("investment amount must be positive, got %.2f", amount)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	pair, err := e.Markets.FetchSeries(ctx, e.Pair, r)
	if err != nil {
		return nil, fmt.Errorf("fetch currency pair %s: %w", e.Pair, err)
	}
	conv, err := calculator.NewConverter(pair)
	if err != nil {
		return nil, err
	}
	baseAmount := conv.ToBase(amount)
	log.Printf("[INFO] converted %.2f %s to %.2f %s at rate %.4f",
		amount, e.Currency, baseAmount, e.Base, conv.InitialRate())

	results := make([]fetched, len(e.Specs))
	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range e.Specs {
		i, spec := i, spec
		g.Go(func() error {
			s, err := e.Economic.FetchSeries(gctx, spec.InflationSeries, r)
			if err != nil {
				return fmt.Errorf("fetch inflation series %s: %w", spec.InflationSeries, err)
			}
			results[i].inflation = s
			return nil
		})
		g.Go(func() error {
			s, err := e.Economic.FetchSeries(gctx, spec.InterestSeries, r)
			if err != nil {
				return fmt.Errorf("fetch interest series %s: %w", spec.InterestSeries, err)
			}
			results[i].interest = s
			return nil
		})
		g.Go(func() error {
			s, err := e.Markets.FetchSeries(gctx, spec.Ticker, r)
			if err != nil {
				return fmt.Errorf("fetch prices %s: %w", spec.Ticker, err)
			}
			results[i].prices = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cmp := &model.Comparison{
		Amount:      amount,
		Currency:    e.Currency,
		Base:        e.Base,
		Range:       r,
		InitialRate: conv.InitialRate(),
		FinalRate:   conv.FinalRate(),
	}

	for i, spec := range e.Specs {
		inflation, err := calculator.AnnualizedGrowthRate(results[i].inflation)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", spec.InflationSeries, err)
		}
		interest, err := calculator.MeanLevel(results[i].interest)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", spec.InterestSeries, err)
		}
		log.Printf("[INFO] %s: annualized inflation %.2f%%, mean interest %.2f%%",
			spec.Name, inflation*100, interest*100)

		params := model.MarketParameters{
			Name:          spec.Name,
			Ticker:        spec.Ticker,
			InflationRate: inflation,
			InterestRate:  interest,
		}
		res, err := evaluator.Evaluate(results[i].prices, baseAmount, r, params)
		if err != nil {
			return nil, err
		}
		cmp.Markets = append(cmp.Markets, model.MarketOutcome{
			Name:       spec.Name,
			Ticker:     spec.Ticker,
			Result:     *res,
			FinalLocal: conv.FromBase(res.FinalValue),
		})
	}

	return cmp, nil
}
