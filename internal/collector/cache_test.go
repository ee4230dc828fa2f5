package collector

import (
	"fmt"
	"testing"
	"time"

	"TradeAdvisor/internal/model"
)

// countingFetcher counts provider hits and can be told to fail.
type countingFetcher struct {
	calls int
	fail  bool
}

func (f *countingFetcher) Name() string { return "counting" }

func (f *countingFetcher) Fetch(symbol, period string) (*model.PriceSeries, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("%w: provider down", ErrDataUnavailable)
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Period:    period,
		Bars:      GenerateBars(100, 30),
		FetchedAt: time.Now(),
	}, nil
}

func TestCachedFetcher_HitWithinTTL(t *testing.T) {
	inner := &countingFetcher{}
	c := NewCachedFetcher(inner, time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	first, err := c.Fetch("GC=F", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(30 * time.Second)
	second, err := c.Fetch("GC=F", "1mo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 provider hit within TTL, got %d", inner.calls)
	}
	if first != second {
		t.Error("expected the cached series to be reused")
	}
}

func TestCachedFetcher_ExpiryRefetches(t *testing.T) {
	inner := &countingFetcher{}
	c := NewCachedFetcher(inner, time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, err := c.Fetch("GC=F", "1mo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	now = now.Add(time.Minute) // exactly TTL: entry is stale
	if _, err := c.Fetch("GC=F", "1mo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("expected refetch after expiry, got %d provider hits", inner.calls)
	}
}

func TestCachedFetcher_KeyedBySymbolAndPeriod(t *testing.T) {
	inner := &countingFetcher{}
	c := NewCachedFetcher(inner, time.Minute)

	c.Fetch("GC=F", "1mo")
	c.Fetch("GC=F", "3mo")
	c.Fetch("SI=F", "1mo")
	if inner.calls != 3 {
		t.Errorf("expected 3 provider hits for 3 distinct keys, got %d", inner.calls)
	}
	if c.Len() != 3 {
		t.Errorf("expected 3 cached entries, got %d", c.Len())
	}
}

func TestCachedFetcher_FailuresNotCached(t *testing.T) {
	inner := &countingFetcher{fail: true}
	c := NewCachedFetcher(inner, time.Minute)

	if _, err := c.Fetch("GC=F", "1mo"); err == nil {
		t.Fatal("expected error from failing provider")
	}
	if c.Len() != 0 {
		t.Errorf("failure must not be cached, got %d entries", c.Len())
	}

	inner.fail = false
	if _, err := c.Fetch("GC=F", "1mo"); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("expected 2 provider hits, got %d", inner.calls)
	}
}

func TestCachedFetcher_Invalidate(t *testing.T) {
	inner := &countingFetcher{}
	c := NewCachedFetcher(inner, time.Hour)

	c.Fetch("GC=F", "1mo")
	c.Invalidate("GC=F", "1mo")
	c.Fetch("GC=F", "1mo")
	if inner.calls != 2 {
		t.Errorf("expected refetch after invalidation, got %d provider hits", inner.calls)
	}
}
