package collector

import (
	"log"

	"TradeAdvisor/internal/calculator"
	"TradeAdvisor/internal/model"
	"TradeAdvisor/internal/strategy"
)

// Analysis bundles everything a presentation layer needs: the raw series,
// the derived indicators, and the resulting signal.
type Analysis struct {
	Series     *model.PriceSeries
	Indicators *model.IndicatorSet
	Signal     *model.Signal
}

// Collector orchestrates data fetching, indicator computation, and signal
// evaluation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Analyze fetches a series and evaluates it. It is total: when the
// provider reports data unavailable, the analysis carries an
// INSUFFICIENT_DATA signal instead of an error.
func (c *Collector) Analyze(symbol, period string) *Analysis {
	series, err := c.Fetcher.Fetch(symbol, period)
	if err != nil {
		log.Printf("[WARN] fetch %s (%s): %v", symbol, period, err)
		return &Analysis{Signal: strategy.Evaluate(nil, nil)}
	}
	ind := calculator.ComputeAll(series)
	return &Analysis{
		Series:     series,
		Indicators: ind,
		Signal:     strategy.Evaluate(series, ind),
	}
}
