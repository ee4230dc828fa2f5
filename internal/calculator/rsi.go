package calculator

import "TradeAdvisor/internal/model"

// RSI computes the relative strength index using trailing simple means of
// gains and losses over `window` deltas. Needs window+1 bars, so values
// before index `window` are NaN. A flat window (no gains, no losses)
// leaves RSI undefined rather than forcing a number out of 0/0.
func RSI(bars []model.OHLCV, window int) []float64 {
	out := nanSeries(len(bars))
	if window <= 0 || len(bars) < window+1 {
		return out
	}
	closes := extractCloses(bars)
	for i := window; i < len(closes); i++ {
		var gain, loss float64
		for j := i - window + 1; j <= i; j++ {
			change := closes[j] - closes[j-1]
			if change > 0 {
				gain += change
			} else {
				loss -= change
			}
		}
		avgGain := gain / float64(window)
		avgLoss := loss / float64(window)
		switch {
		case avgGain == 0 && avgLoss == 0:
			// undefined, keep NaN
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out
}
