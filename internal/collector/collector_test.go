package collector

import (
	"errors"
	"testing"

	"TradeAdvisor/internal/model"
)

func TestAnalyze_DataUnavailableYieldsInsufficient(t *testing.T) {
	col := NewCollector(&countingFetcher{fail: true})
	a := col.Analyze("GC=F", "1mo")

	if a.Signal == nil {
		t.Fatal("analysis must always carry a signal")
	}
	if a.Signal.Kind != model.SignalInsufficientData {
		t.Errorf("expected INSUFFICIENT_DATA on fetch failure, got %s", a.Signal.Kind)
	}
	if a.Signal.Confidence != 0 {
		t.Errorf("expected confidence 0, got %v", a.Signal.Confidence)
	}
	if a.Series != nil {
		t.Error("expected no series on fetch failure")
	}
}

func TestAnalyze_FixtureSeries(t *testing.T) {
	col := NewCollector(NewFixtureFetcher(2000, 300))
	a := col.Analyze("GC=F", "1mo")

	if a.Series.Len() != 300 {
		t.Fatalf("expected 300 bars, got %d", a.Series.Len())
	}
	if len(a.Indicators.SMAShort) != 300 {
		t.Fatalf("indicator length must match series length")
	}
	if !model.Defined(a.Indicators.SMAShort[299]) || !model.Defined(a.Indicators.SMALong[299]) {
		t.Error("expected both SMAs defined on a 300-bar series")
	}
	if a.Signal.Kind == model.SignalInsufficientData {
		t.Errorf("unexpected signal kind: %s", a.Signal.Kind)
	}
}

func TestFixtureFetcher_CannedSeries(t *testing.T) {
	f := NewFixtureFetcher(100, 50)
	f.Series["X"] = &model.PriceSeries{Symbol: "X", Bars: GenerateBars(42, 5)}

	s, err := f.Fetch("X", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("expected the canned 5-bar series, got %d bars", s.Len())
	}

	f.Series["EMPTY"] = &model.PriceSeries{Symbol: "EMPTY"}
	if _, err := f.Fetch("EMPTY", "1mo"); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for an empty canned series, got %v", err)
	}
}

func TestGenerateBars_Chronological(t *testing.T) {
	bars := GenerateBars(100, 60)
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			t.Fatalf("bars must be strictly increasing by time at index %d", i)
		}
	}
}
