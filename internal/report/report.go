package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"VolumeWatch/internal/model"
)

// Row is one rendered line of the ranked table.
type Row struct {
	Symbol           string
	Price            string // e.g. "123.45 (+1.23%)"
	DailyChange      float64
	VolumeChange     float64
	Volume           int64
	AvgVolume        int64
	VolumeDisplay    string
	AvgVolumeDisplay string
	YTDReturn        float64
	Date             string
}

// TableView is the view model for one refresh of the dashboard table.
type TableView struct {
	Rows                 []Row
	TotalStocks          int
	PositiveDailyChange  int
	PositiveVolumeChange int
	GeneratedAt          string
}

// Empty reports whether the refresh produced no usable rows, in which case
// the UI shows a "no valid data" notice instead of an empty table.
func (v *TableView) Empty() bool {
	return len(v.Rows) == 0
}

// Build ranks metric rows by volume deviation (descending, stable) and
// formats them for display. No-data symbols must already be filtered out.
func Build(rows []model.MetricRow, generatedAt time.Time) *TableView {
	ranked := make([]model.MetricRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].VolumeChange > ranked[j].VolumeChange
	})

	view := &TableView{
		Rows:        make([]Row, 0, len(ranked)),
		GeneratedAt: generatedAt.UTC().Format("2006-01-02 15:04:05 UTC"),
	}

	for _, r := range ranked {
		price := round2(r.Close)
		daily := round2(r.DailyChange)
		volChange := round2(r.VolumeChange)
		volume := int64(r.Volume)
		avgVolume := int64(r.AvgVolume)

		view.Rows = append(view.Rows, Row{
			Symbol:           r.Symbol,
			Price:            fmt.Sprintf("%.2f (%+.2f%%)", price, daily),
			DailyChange:      daily,
			VolumeChange:     volChange,
			Volume:           volume,
			AvgVolume:        avgVolume,
			VolumeDisplay:    humanize.Comma(volume),
			AvgVolumeDisplay: humanize.Comma(avgVolume),
			YTDReturn:        round2(r.YTDReturn),
			Date:             r.Date.Format("2006-01-02"),
		})
		if daily > 0 {
			view.PositiveDailyChange++
		}
		if volChange > 0 {
			view.PositiveVolumeChange++
		}
	}
	view.TotalStocks = len(view.Rows)
	return view
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
