package model

import "time"

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds one symbol's trailing history, ordered by date ascending.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the series carries no bars.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Bars) == 0
}
