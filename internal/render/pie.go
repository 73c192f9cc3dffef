package render

import (
	"fmt"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spec-kit/ticket-reports/internal/domain"
)

// piePalette holds the slice fill colors, cycled when a view has more
// groups than colors.
var piePalette = []drawing.Color{
	{R: 0x8d, G: 0xd3, B: 0xc7, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xb3, A: 0xff},
	{R: 0xbe, G: 0xba, B: 0xda, A: 0xff},
	{R: 0xfb, G: 0x80, B: 0x72, A: 0xff},
	{R: 0x80, G: 0xb1, B: 0xd3, A: 0xff},
	{R: 0xfd, G: 0xb4, B: 0x62, A: 0xff},
	{R: 0xb3, G: 0xde, B: 0x69, A: 0xff},
	{R: 0xfc, G: 0xcd, B: 0xe5, A: 0xff},
	{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff},
	{R: 0xbc, G: 0x80, B: 0xbd, A: 0xff},
	{R: 0xcc, G: 0xeb, B: 0xc5, A: 0xff},
	{R: 0xff, G: 0xed, B: 0x6f, A: 0xff},
}

// renderPie writes the top-stores pie. Slice labels carry the share of
// the plotted counts, not of all closed tickets.
func renderPie(path, title string, view []domain.GroupCount) error {
	total := domain.Total(view)

	values := make([]chart.Value, 0, len(view))
	for i, g := range view {
		pct := 100 * float64(g.Count) / float64(total)
		values = append(values, chart.Value{
			Value: float64(g.Count),
			Label: fmt.Sprintf("%s: %.1f%%", g.Name, pct),
			Style: chart.Style{FillColor: piePalette[i%len(piePalette)]},
		})
	}

	pie := chart.PieChart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: 16},
		Width:      10 * chartDPI,
		Height:     8 * chartDPI,
		DPI:        chartDPI,
		Values:     values,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := pie.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
