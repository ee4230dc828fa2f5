package collector

import (
	"fmt"
	"time"

	"TradeAdvisor/internal/model"
)

// FixtureFetcher is a deterministic replay provider for development and
// testing. Canned series take precedence; otherwise a synthetic trending
// series is generated around BasePrice.
type FixtureFetcher struct {
	BasePrice float64
	BarCount  int
	Series    map[string]*model.PriceSeries // keyed by symbol
}

// NewFixtureFetcher creates a fixture provider generating barCount bars
// around basePrice for any symbol without a canned series.
func NewFixtureFetcher(basePrice float64, barCount int) *FixtureFetcher {
	return &FixtureFetcher{
		BasePrice: basePrice,
		BarCount:  barCount,
		Series:    make(map[string]*model.PriceSeries),
	}
}

func (f *FixtureFetcher) Name() string { return "fixture" }

func (f *FixtureFetcher) Fetch(symbol, period string) (*model.PriceSeries, error) {
	if s, ok := f.Series[symbol]; ok {
		if s.Len() == 0 {
			return nil, fmt.Errorf("%w: fixture has empty series for %s", ErrDataUnavailable, symbol)
		}
		return s, nil
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Bars:      GenerateBars(f.BasePrice, f.BarCount),
		FetchedAt: time.Now(),
	}, nil
}

// GenerateBars builds a gently trending synthetic series ending near
// basePrice. Deterministic for a given (basePrice, count).
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
