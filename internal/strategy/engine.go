package strategy

import (
	"fmt"
	"math"

	"TradeAdvisor/internal/model"
)

// MinBars is the minimum series length before any signal is attempted.
const MinBars = 20

// RSI thresholds for the overbought/oversold veto.
const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0
)

// Evaluate produces a trading signal from the latest bar of the series and
// its indicators. It is total: every input, including a nil or empty
// series, maps to exactly one signal. Each call is independent; the engine
// keeps no state between evaluations.
func Evaluate(series *model.PriceSeries, ind *model.IndicatorSet) *model.Signal {
	if series.Len() < MinBars {
		return &model.Signal{
			Kind:       model.SignalInsufficientData,
			Reason:     "Not enough data",
			Confidence: 0,
		}
	}

	last := series.Len() - 1
	price := series.Bars[last].Close

	// An indicator set that does not cover the last bar counts as
	// undefined, same as NaN values inside one that does.
	sma, rsi := math.NaN(), math.NaN()
	if ind != nil && len(ind.SMAShort) > last && len(ind.RSI) > last {
		sma = ind.SMAShort[last]
		rsi = ind.RSI[last]
	}

	if !model.Defined(sma) || !model.Defined(rsi) {
		return &model.Signal{
			Kind:       model.SignalNeutral,
			Reason:     "Calculating...",
			Confidence: 50,
		}
	}

	// Price vs SMA20 picks the direction; RSI vetoes chasing an
	// overbought rally or selling into an oversold dip.
	if price > sma {
		if rsi < rsiOverbought {
			return &model.Signal{
				Kind:       model.SignalBuy,
				Reason:     fmt.Sprintf("Price above SMA20, RSI: %.1f", rsi),
				Confidence: math.Min(80, 50+(price-sma)/sma*1000),
			}
		}
	} else {
		if rsi > rsiOversold {
			return &model.Signal{
				Kind:       model.SignalSell,
				Reason:     fmt.Sprintf("Price below SMA20, RSI: %.1f", rsi),
				Confidence: math.Min(80, 50+(sma-price)/sma*1000),
			}
		}
	}

	return &model.Signal{
		Kind:       model.SignalNeutral,
		Reason:     fmt.Sprintf("Mixed signals, RSI: %.1f", rsi),
		Confidence: 40,
	}
}
