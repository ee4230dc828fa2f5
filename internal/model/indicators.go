package model

import "math"

// IndicatorSet holds computed indicator series aligned by position with
// the bars they were derived from. A value of NaN means the indicator is
// not yet defined at that bar (not enough preceding history); that is a
// normal state, not an error.
type IndicatorSet struct {
	SMAShort []float64 // 20-bar simple moving average
	SMALong  []float64 // 50-bar simple moving average
	RSI      []float64 // 14-bar relative strength index
	BBMiddle []float64
	BBUpper  []float64
	BBLower  []float64
}

// Defined reports whether an indicator value is available.
func Defined(v float64) bool {
	return !math.IsNaN(v)
}
