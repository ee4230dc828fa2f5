package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw price data for analysis. Bars are strictly
// increasing by time with no duplicates; the series is not modified after
// construction. Indicators live in a parallel IndicatorSet.
type PriceSeries struct {
	Symbol    string
	Period    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars, tolerating a nil series.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bars)
}

// LastClose returns the close of the most recent bar.
func (s *PriceSeries) LastClose() float64 {
	return s.Bars[len(s.Bars)-1].Close
}
