package calculator

import (
	"math"

	"TradeAdvisor/internal/model"
)

// BollingerBands computes the middle band (simple moving average), and the
// upper/lower bands offset by k times the trailing standard deviation of
// closes. The standard deviation uses the sample convention (divide by
// window-1); changing it would change the exact band width.
func BollingerBands(bars []model.OHLCV, window int, k float64) (middle, upper, lower []float64) {
	middle = MovingAverage(bars, window)
	upper = nanSeries(len(bars))
	lower = nanSeries(len(bars))
	if window < 2 || len(bars) < window {
		return middle, upper, lower
	}
	closes := extractCloses(bars)
	for i := window - 1; i < len(closes); i++ {
		mean := middle[i]
		var ss float64
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - mean
			ss += d * d
		}
		std := math.Sqrt(ss / float64(window-1))
		upper[i] = mean + k*std
		lower[i] = mean - k*std
	}
	return middle, upper, lower
}
