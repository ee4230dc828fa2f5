package recorder

import (
	"math"

	"TradeAdvisor/internal/collector"
	"TradeAdvisor/internal/model"
)

// SignalSnapshot holds one evaluation for persistence.
type SignalSnapshot struct {
	Symbol     string
	Period     string
	Price      float64
	SMAShort   float64
	SMALong    float64
	RSI        float64
	BBMiddle   float64
	BBUpper    float64
	BBLower    float64
	Kind       model.SignalKind
	Reason     string
	Confidence float64
}

// SnapshotFromAnalysis flattens an analysis into a snapshot. Indicator
// fields stay NaN when the series was missing or too short.
func SnapshotFromAnalysis(symbol, period string, a *collector.Analysis) *SignalSnapshot {
	snap := &SignalSnapshot{
		Symbol:     symbol,
		Period:     period,
		Price:      math.NaN(),
		SMAShort:   math.NaN(),
		SMALong:    math.NaN(),
		RSI:        math.NaN(),
		BBMiddle:   math.NaN(),
		BBUpper:    math.NaN(),
		BBLower:    math.NaN(),
		Kind:       a.Signal.Kind,
		Reason:     a.Signal.Reason,
		Confidence: a.Signal.Confidence,
	}
	if a.Series.Len() == 0 || a.Indicators == nil {
		return snap
	}
	last := a.Series.Len() - 1
	snap.Price = a.Series.Bars[last].Close
	snap.SMAShort = a.Indicators.SMAShort[last]
	snap.SMALong = a.Indicators.SMALong[last]
	snap.RSI = a.Indicators.RSI[last]
	snap.BBMiddle = a.Indicators.BBMiddle[last]
	snap.BBUpper = a.Indicators.BBUpper[last]
	snap.BBLower = a.Indicators.BBLower[last]
	return snap
}

// Recorder persists signal history for later analysis.
type Recorder interface {
	RecordSignal(snap *SignalSnapshot) error
	Close() error
}
