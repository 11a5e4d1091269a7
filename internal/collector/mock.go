package collector

import (
	"time"

	"VolumeWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	// Series maps symbol to its bars. A missing symbol yields no data.
	Series map[string][]model.OHLCV
	// Err, when set, is returned for every fetch.
	Err error
	// Calls counts fetches per symbol.
	Calls map[string]int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(symbol string, days int) ([]model.OHLCV, error) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[symbol]++
	if m.Err != nil {
		return nil, m.Err
	}
	bars := m.Series[symbol]
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// GenerateBars builds count synthetic daily bars drifting around basePrice.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
