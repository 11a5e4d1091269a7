package model

import "time"

// MetricRow summarizes the latest observation of one symbol's history.
// Rows are recomputed on every refresh and never persisted.
type MetricRow struct {
	Symbol       string
	Close        float64
	DailyChange  float64 // percent vs. previous close
	YTDReturn    float64 // percent since first bar on/after Jan 1 (UTC)
	Volume       float64
	AvgVolume    float64 // trailing 10-bar mean
	VolumeChange float64 // percent deviation of Volume from AvgVolume
	Date         time.Time
}
