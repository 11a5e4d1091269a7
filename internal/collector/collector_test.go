package collector

import (
	"errors"
	"testing"
	"time"

	"VolumeWatch/internal/model"
)

func constantBars(n int, close, volume float64) []model.OHLCV {
	start := time.Now().UTC().AddDate(-1, 0, 0)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: volume,
		}
	}
	return bars
}

func TestSnapshot_ExcludesEmptySymbols(t *testing.T) {
	fetcher := &MockFetcher{Series: map[string][]model.OHLCV{
		"X": nil, // fetch yields no data
		"Y": constantBars(252, 100, 1000),
	}}
	col := NewCollector(fetcher, false)

	rows := col.Snapshot([]string{"X", "Y"})
	if len(rows) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(rows))
	}
	if rows[0].Symbol != "Y" {
		t.Errorf("expected row for Y, got %s", rows[0].Symbol)
	}
	if rows[0].DailyChange != 0 || rows[0].VolumeChange != 0 || rows[0].YTDReturn != 0 {
		t.Errorf("constant series should yield all-zero changes: %+v", rows[0])
	}
}

func TestSnapshot_FetchErrorSkipsSymbol(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("provider down")}
	col := NewCollector(fetcher, false)

	rows := col.Snapshot([]string{"A", "B"})
	if len(rows) != 0 {
		t.Fatalf("expected no rows when every fetch fails, got %d", len(rows))
	}
}

func TestSnapshot_PreservesFetchOrder(t *testing.T) {
	fetcher := &MockFetcher{Series: map[string][]model.OHLCV{
		"A": constantBars(20, 10, 100),
		"B": constantBars(20, 20, 200),
		"C": constantBars(20, 30, 300),
	}}
	col := NewCollector(fetcher, false)

	rows := col.Snapshot([]string{"C", "A", "B"})
	want := []string{"C", "A", "B"}
	for i, w := range want {
		if rows[i].Symbol != w {
			t.Errorf("position %d: expected %s, got %s", i, w, rows[i].Symbol)
		}
	}
}
