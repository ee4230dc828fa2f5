package calculator

import (
	"math"
	"testing"
	"time"

	"TradeAdvisor/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func rampCloses(start float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)
	}
	return closes
}

func TestMovingAverage_Alignment(t *testing.T) {
	bars := barsFromCloses(rampCloses(100, 25))
	out := MovingAverage(bars, 20)

	if len(out) != 25 {
		t.Fatalf("expected output length 25, got %d", len(out))
	}
	for i := 0; i < 19; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("index %d: expected NaN before full window, got %v", i, out[i])
		}
	}
	// First defined index is window-1 = 19: mean of 100..119.
	if out[19] != 109.5 {
		t.Errorf("index 19: expected 109.5, got %v", out[19])
	}
	// Last bar: mean of 105..124.
	if out[24] != 114.5 {
		t.Errorf("index 24: expected 114.5, got %v", out[24])
	}
}

func TestMovingAverage_ShortSeries(t *testing.T) {
	bars := barsFromCloses(rampCloses(100, 5))
	out := MovingAverage(bars, 20)
	if len(out) != 5 {
		t.Fatalf("expected output length 5, got %d", len(out))
	}
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Errorf("index %d: expected NaN, got %v", i, v)
		}
	}
}

func TestMovingAverage_Determinism(t *testing.T) {
	bars := barsFromCloses(rampCloses(50, 40))
	a := MovingAverage(bars, 20)
	b := MovingAverage(bars, 20)
	for i := range a {
		if math.IsNaN(a[i]) != math.IsNaN(b[i]) {
			t.Fatalf("index %d: definedness differs between runs", i)
		}
		if !math.IsNaN(a[i]) && a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestComputeAll_Windows(t *testing.T) {
	series := &model.PriceSeries{
		Symbol: "TEST",
		Bars:   barsFromCloses(rampCloses(100, 60)),
	}
	ind := ComputeAll(series)

	if !model.Defined(ind.SMAShort[19]) || model.Defined(ind.SMAShort[18]) {
		t.Error("SMAShort must first be defined at index 19")
	}
	if !model.Defined(ind.SMALong[49]) || model.Defined(ind.SMALong[48]) {
		t.Error("SMALong must first be defined at index 49")
	}
	if !model.Defined(ind.RSI[14]) || model.Defined(ind.RSI[13]) {
		t.Error("RSI must first be defined at index 14")
	}
	if !model.Defined(ind.BBMiddle[19]) || model.Defined(ind.BBUpper[18]) {
		t.Error("Bollinger bands must first be defined at index 19")
	}
}

func TestComputeAll_TwentyBarsExactly(t *testing.T) {
	series := &model.PriceSeries{
		Symbol: "TEST",
		Bars:   barsFromCloses(rampCloses(100, 20)),
	}
	ind := ComputeAll(series)

	last := 19
	if !model.Defined(ind.SMAShort[last]) {
		t.Error("SMAShort must be defined at the last of 20 bars")
	}
	for i, v := range ind.SMALong {
		if !math.IsNaN(v) {
			t.Errorf("SMALong index %d: expected NaN with only 20 bars, got %v", i, v)
		}
	}
}

func TestComputeAll_NilSeries(t *testing.T) {
	ind := ComputeAll(nil)
	if len(ind.SMAShort) != 0 || len(ind.RSI) != 0 {
		t.Error("nil series must yield empty indicator slices")
	}
}
