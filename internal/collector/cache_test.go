package collector

import (
	"errors"
	"testing"
	"time"

	"VolumeWatch/internal/model"
)

func TestCachedFetcher_ServesFromCacheWithinTTL(t *testing.T) {
	inner := &MockFetcher{Series: map[string][]model.OHLCV{
		"AAPL": constantBars(30, 100, 1000),
	}}
	cached := NewCachedFetcher(inner, time.Hour, false)

	for i := 0; i < 3; i++ {
		bars, err := cached.FetchDailyHistory("AAPL", HistoryDays)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bars) != 30 {
			t.Fatalf("expected 30 bars, got %d", len(bars))
		}
	}
	if inner.Calls["AAPL"] != 1 {
		t.Errorf("expected a single upstream fetch, got %d", inner.Calls["AAPL"])
	}
}

func TestCachedFetcher_InvalidateForcesRefetch(t *testing.T) {
	inner := &MockFetcher{Series: map[string][]model.OHLCV{
		"AAPL": constantBars(30, 100, 1000),
	}}
	cached := NewCachedFetcher(inner, time.Hour, false)

	if _, err := cached.FetchDailyHistory("AAPL", HistoryDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cached.Invalidate()
	if _, err := cached.FetchDailyHistory("AAPL", HistoryDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls["AAPL"] != 2 {
		t.Errorf("expected refetch after invalidate, got %d calls", inner.Calls["AAPL"])
	}
}

func TestCachedFetcher_ExpiryAndSweep(t *testing.T) {
	inner := &MockFetcher{Series: map[string][]model.OHLCV{
		"AAPL": constantBars(30, 100, 1000),
	}}
	cached := NewCachedFetcher(inner, time.Nanosecond, false)

	if _, err := cached.FetchDailyHistory("AAPL", HistoryDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(time.Millisecond)

	if removed := cached.Sweep(); removed != 1 {
		t.Errorf("expected sweep to remove 1 entry, got %d", removed)
	}
	if _, err := cached.FetchDailyHistory("AAPL", HistoryDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.Calls["AAPL"] != 2 {
		t.Errorf("expected refetch after expiry, got %d calls", inner.Calls["AAPL"])
	}
}

func TestCachedFetcher_DoesNotCacheErrors(t *testing.T) {
	inner := &MockFetcher{Err: errors.New("provider down")}
	cached := NewCachedFetcher(inner, time.Hour, false)

	for i := 0; i < 2; i++ {
		if _, err := cached.FetchDailyHistory("AAPL", HistoryDays); err == nil {
			t.Fatal("expected error from inner fetcher")
		}
	}
	if inner.Calls["AAPL"] != 2 {
		t.Errorf("errors should not be cached, got %d calls", inner.Calls["AAPL"])
	}
}
