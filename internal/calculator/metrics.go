package calculator

import (
	"errors"
	"time"

	"VolumeWatch/internal/model"
)

// ErrNoData indicates the series carried no bars; the symbol is simply
// excluded from the current refresh rather than rendered as an error row.
var ErrNoData = errors.New("no data in price series")

// VolumeWindow is the trailing window used for the average-volume baseline.
const VolumeWindow = 10

// Derive computes the summary row for a series using the current UTC clock
// to locate the year-to-date anchor.
func Derive(series *model.PriceSeries) (*model.MetricRow, error) {
	return DeriveAt(series, time.Now().UTC())
}

// DeriveAt computes the summary row for a series. Only the latest bar's
// derived values are reported. The year-to-date anchor is the first bar on
// or after Jan 1 of now's year; if the series predates the current year
// entirely, the first available bar is used instead.
func DeriveAt(series *model.PriceSeries, now time.Time) (*model.MetricRow, error) {
	if series.Empty() {
		return nil, ErrNoData
	}

	bars := series.Bars
	last := bars[len(bars)-1]

	avgVolume := trailingMeanVolume(bars, VolumeWindow)
	volumeChange := 0.0
	if avgVolume != 0 {
		volumeChange = (last.Volume - avgVolume) / avgVolume * 100
	}

	dailyChange := 0.0
	if len(bars) >= 2 {
		prev := bars[len(bars)-2]
		if prev.Close != 0 {
			dailyChange = (last.Close - prev.Close) / prev.Close * 100
		}
	}

	ytdReturn := 0.0
	anchor := ytdAnchor(bars, now)
	if anchor.Close != 0 {
		ytdReturn = (last.Close - anchor.Close) / anchor.Close * 100
	}

	return &model.MetricRow{
		Symbol:       series.Symbol,
		Close:        last.Close,
		DailyChange:  dailyChange,
		YTDReturn:    ytdReturn,
		Volume:       last.Volume,
		AvgVolume:    avgVolume,
		VolumeChange: volumeChange,
		Date:         last.Time,
	}, nil
}

// trailingMeanVolume averages the volumes of the most recent window bars,
// or of all bars when fewer are available.
func trailingMeanVolume(bars []model.OHLCV, window int) float64 {
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	return sum / float64(len(bars)-start)
}

// ytdAnchor returns the first bar on or after Jan 1 of now's year, falling
// back to the first bar when the series does not reach into the year.
func ytdAnchor(bars []model.OHLCV, now time.Time) model.OHLCV {
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, b := range bars {
		if !b.Time.Before(yearStart) {
			return b
		}
	}
	return bars[0]
}
