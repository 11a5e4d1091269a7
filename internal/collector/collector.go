package collector

import (
	"errors"
	"log"
	"time"

	"VolumeWatch/internal/calculator"
	"VolumeWatch/internal/model"
)

// HistoryDays is the trailing window requested per symbol, roughly one year
// of trading days.
const HistoryDays = 252

// Collector fetches watchlist symbols and derives their metric rows.
type Collector struct {
	Fetcher Fetcher
	Debug   bool
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, debug bool) *Collector {
	return &Collector{Fetcher: fetcher, Debug: debug}
}

// Snapshot fetches each symbol sequentially and derives one metric row per
// symbol with data. Symbols that fail to fetch or return an empty series
// are excluded from the result; they never abort the refresh.
func (c *Collector) Snapshot(symbols []string) []model.MetricRow {
	rows := make([]model.MetricRow, 0, len(symbols))
	for _, symbol := range symbols {
		bars, err := c.Fetcher.FetchDailyHistory(symbol, HistoryDays)
		if err != nil {
			log.Printf("[WARN] fetch %s: %v", symbol, err)
			continue
		}
		series := &model.PriceSeries{
			Symbol:    symbol,
			Bars:      bars,
			FetchedAt: time.Now().UTC(),
		}
		row, err := calculator.Derive(series)
		if err != nil {
			if errors.Is(err, calculator.ErrNoData) {
				if c.Debug {
					log.Printf("[DEBUG] no data for %s, excluded from table", symbol)
				}
				continue
			}
			log.Printf("[WARN] derive %s: %v", symbol, err)
			continue
		}
		rows = append(rows, *row)
	}
	return rows
}
