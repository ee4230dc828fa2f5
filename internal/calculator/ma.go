package calculator

import (
	"math"

	"TradeAdvisor/internal/model"
)

// Standard windows used by ComputeAll and the strategy engine.
const (
	SMAShortWindow  = 20
	SMALongWindow   = 50
	RSIWindow       = 14
	BollingerWindow = 20
	BollingerK      = 2.0
)

// MovingAverage computes the trailing simple moving average of closes.
// The output has the same length as bars; positions before window-1 are
// NaN because the full window does not yet fit in the series.
func MovingAverage(bars []model.OHLCV, window int) []float64 {
	out := nanSeries(len(bars))
	if window <= 0 || len(bars) < window {
		return out
	}
	closes := extractCloses(bars)
	for i := window - 1; i < len(closes); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// ComputeAll derives the full indicator set from a price series using the
// standard windows. The input series is only read, never modified.
func ComputeAll(series *model.PriceSeries) *model.IndicatorSet {
	var bars []model.OHLCV
	if series != nil {
		bars = series.Bars
	}
	middle, upper, lower := BollingerBands(bars, BollingerWindow, BollingerK)
	return &model.IndicatorSet{
		SMAShort: MovingAverage(bars, SMAShortWindow),
		SMALong:  MovingAverage(bars, SMALongWindow),
		RSI:      RSI(bars, RSIWindow),
		BBMiddle: middle,
		BBUpper:  upper,
		BBLower:  lower,
	}
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
