// Package charts renders the library statistics as standalone chart pages.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mrlokans/library/internal/entities"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("no books to chart")

const (
	ReadLabel   = "Read Books"
	UnreadLabel = "Unread Books"

	readColor   = "#4CAF50"
	unreadColor = "#F44336"
)

type Options struct {
	// AssetsHost is where the echarts scripts are loaded from. Empty keeps the library default.
	AssetsHost string
	Width      string
	Height     string
}

// RenderReadStats writes an HTML page with a donut chart of read versus unread books.
func RenderReadStats(w io.Writer, stats entities.Stats, o Options) error {
	if stats.Empty() {
		return ErrNoData
	}

	pie := NewReadStatsChart(stats, o)
	if err := pie.Render(w); err != nil {
		return fmt.Errorf("render read stats chart: %w", err)
	}
	return nil
}

// NewReadStatsChart builds the donut chart without rendering it.
func NewReadStatsChart(stats entities.Stats, o Options) *charts.Pie {
	width, height := o.Width, o.Height
	if width == "" {
		width = "100%"
	}
	if height == "" {
		height = "360px"
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  "Read vs Unread Books",
			Width:      width,
			Height:     height,
			AssetsHost: o.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Read vs Unread Books",
			Subtitle: fmt.Sprintf("%d books in total", stats.Total),
		}),
	)

	pie.AddSeries("Books", []opts.PieData{
		{Name: ReadLabel, Value: stats.Read, ItemStyle: &opts.ItemStyle{Color: readColor}},
		{Name: UnreadLabel, Value: stats.Unread, ItemStyle: &opts.ItemStyle{Color: unreadColor}},
	}, charts.WithPieChartOpts(opts.PieChart{
		Radius: []string{"40%", "70%"},
	}))

	return pie
}
