package report

import (
	"testing"
	"time"

	"VolumeWatch/internal/model"
)

var testDate = time.Date(2024, 7, 12, 0, 0, 0, 0, time.UTC)

func row(symbol string, volumeChange, dailyChange float64) model.MetricRow {
	return model.MetricRow{
		Symbol:       symbol,
		Close:        100,
		DailyChange:  dailyChange,
		YTDReturn:    5,
		Volume:       1000,
		AvgVolume:    900,
		VolumeChange: volumeChange,
		Date:         testDate,
	}
}

func TestBuild_SortsDescendingByVolumeChange(t *testing.T) {
	view := Build([]model.MetricRow{
		row("LOW", -3.5, 1),
		row("HIGH", 42.1, -1),
		row("MID", 10.0, 0),
	}, testDate)

	want := []string{"HIGH", "MID", "LOW"}
	for i, w := range want {
		if view.Rows[i].Symbol != w {
			t.Errorf("position %d: expected %s, got %s", i, w, view.Rows[i].Symbol)
		}
	}
}

func TestBuild_StableUnderEqualKeys(t *testing.T) {
	view := Build([]model.MetricRow{
		row("A", 7.0, 0),
		row("B", 7.0, 0),
		row("C", 7.0, 0),
	}, testDate)

	want := []string{"A", "B", "C"}
	for i, w := range want {
		if view.Rows[i].Symbol != w {
			t.Errorf("tie order not preserved at %d: expected %s, got %s", i, w, view.Rows[i].Symbol)
		}
	}
}

func TestBuild_Formatting(t *testing.T) {
	in := model.MetricRow{
		Symbol:       "MSFT",
		Close:        123.4567,
		DailyChange:  1.2345,
		YTDReturn:    -9.876,
		Volume:       12345678.9,
		AvgVolume:    9876543.2,
		VolumeChange: 24.9999,
		Date:         testDate,
	}
	view := Build([]model.MetricRow{in}, testDate)
	r := view.Rows[0]

	if r.Price != "123.46 (+1.23%)" {
		t.Errorf("unexpected price display: %q", r.Price)
	}
	if r.DailyChange != 1.23 {
		t.Errorf("expected daily change rounded to 1.23, got %v", r.DailyChange)
	}
	if r.YTDReturn != -9.88 {
		t.Errorf("expected YTD rounded to -9.88, got %v", r.YTDReturn)
	}
	if r.VolumeChange != 25.0 {
		t.Errorf("expected volume change rounded to 25, got %v", r.VolumeChange)
	}
	if r.Volume != 12345678 || r.AvgVolume != 9876543 {
		t.Errorf("volumes should be truncated to whole numbers, got %d / %d", r.Volume, r.AvgVolume)
	}
	if r.VolumeDisplay != "12,345,678" {
		t.Errorf("unexpected volume display: %q", r.VolumeDisplay)
	}
	if r.Date != "2024-07-12" {
		t.Errorf("unexpected date: %q", r.Date)
	}
}

func TestBuild_NegativeDailyChangeDisplay(t *testing.T) {
	in := row("IBM", 0, -2.5)
	in.Close = 50
	view := Build([]model.MetricRow{in}, testDate)
	if view.Rows[0].Price != "50.00 (-2.50%)" {
		t.Errorf("unexpected price display: %q", view.Rows[0].Price)
	}
}

func TestBuild_SummaryCounts(t *testing.T) {
	view := Build([]model.MetricRow{
		row("A", 5, 2),   // positive both
		row("B", -1, 3),  // positive daily only
		row("C", 8, -4),  // positive volume only
		row("D", 0, 0),   // neither (zero is not positive)
	}, testDate)

	if view.TotalStocks != 4 {
		t.Errorf("expected 4 total, got %d", view.TotalStocks)
	}
	if view.PositiveDailyChange != 2 {
		t.Errorf("expected 2 positive daily, got %d", view.PositiveDailyChange)
	}
	if view.PositiveVolumeChange != 2 {
		t.Errorf("expected 2 positive volume, got %d", view.PositiveVolumeChange)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	view := Build(nil, testDate)
	if !view.Empty() {
		t.Error("expected empty view for no input rows")
	}
	if view.TotalStocks != 0 {
		t.Errorf("expected zero total, got %d", view.TotalStocks)
	}
}

func TestBuild_GeneratedAtUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	at := time.Date(2024, 7, 12, 10, 30, 0, 0, loc)
	view := Build(nil, at)
	if view.GeneratedAt != "2024-07-12 05:30:00 UTC" {
		t.Errorf("expected UTC timestamp, got %q", view.GeneratedAt)
	}
}
