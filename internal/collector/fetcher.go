package collector

import "VolumeWatch/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyHistory returns up to days trailing daily bars for the
	// symbol, ordered by date ascending. An unknown symbol yields an
	// empty slice, not an error.
	FetchDailyHistory(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
