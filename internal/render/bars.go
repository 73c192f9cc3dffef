package render

import (
	"image/color"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/spec-kit/ticket-reports/internal/domain"
)

var (
	storeBarColor = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	techBarColor  = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
)

// barSpec fixes the look of one horizontal bar chart. Width and height
// are physical inches at the package DPI.
type barSpec struct {
	title  string
	xLabel string
	yLabel string
	color  color.RGBA
	width  vg.Length
	height vg.Length
}

// renderBars writes one horizontal bar chart for a descending view.
func renderBars(path string, spec barSpec, view []domain.GroupCount) error {
	p := plot.New()
	p.Title.Text = spec.title
	p.X.Label.Text = spec.xLabel
	p.Y.Label.Text = spec.yLabel
	p.X.Tick.Marker = countTicks{}

	// Index 0 draws at the bottom; reverse so the busiest group sits on top.
	n := len(view)
	values := make(plotter.Values, n)
	names := make([]string, n)
	for i, g := range view {
		values[n-1-i] = float64(g.Count)
		names[n-1-i] = g.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = spec.color
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	labels, err := countLabels(values)
	if err != nil {
		return err
	}
	p.Add(labels)

	canvas := vgimg.NewWith(
		vgimg.UseWH(spec.width*vg.Inch, spec.height*vg.Inch),
		vgimg.UseDPI(chartDPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// countLabels puts each bar's count just past its end.
func countLabels(values plotter.Values) (*plotter.Labels, error) {
	pts := make(plotter.XYs, len(values))
	text := make([]string, len(values))
	for i, v := range values {
		pts[i] = plotter.XY{X: v + 0.1, Y: float64(i)}
		text[i] = strconv.Itoa(int(v))
	}
	return plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: text})
}

// countTicks emits integer tick marks only, thinned to roughly ten.
type countTicks struct{}

func (countTicks) Ticks(min, max float64) []plot.Tick {
	step := math.Max(1, math.Ceil((max-min)/10))
	var ticks []plot.Tick
	for v := math.Ceil(min); v <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}
