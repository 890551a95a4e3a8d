package compare

import (
	"image/color"
	"io"

	"econdash/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	country1Color = color.RGBA{R: 0x08, G: 0x42, B: 0x72, A: 0xff}
	country2Color = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
)

// WriteChart draws the comparison as grouped bars and writes it as PNG
func WriteChart(w io.Writer, result *Result) error {
	if result == nil || len(result.Rows) == 0 {
		return errors.InvalidInput("nothing to chart")
	}

	p := plot.New()
	p.Title.Text = result.Title()
	p.Y.Label.Text = "Value"

	values1 := make(plotter.Values, len(result.Rows))
	values2 := make(plotter.Values, len(result.Rows))
	names := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		values1[i] = row.Value1
		values2[i] = row.Value2
		names[i] = row.Metric
	}

	width := vg.Points(18)
	bars1, err := plotter.NewBarChart(values1, width)
	if err != nil {
		return errors.Wrap(err, "failed to build chart")
	}
	bars1.LineStyle.Width = vg.Length(0)
	bars1.Color = country1Color
	bars1.Offset = -width / 2

	bars2, err := plotter.NewBarChart(values2, width)
	if err != nil {
		return errors.Wrap(err, "failed to build chart")
	}
	bars2.LineStyle.Width = vg.Length(0)
	bars2.Color = country2Color
	bars2.Offset = width / 2

	p.Add(bars1, bars2)
	p.Legend.Add(result.Country1, bars1)
	p.Legend.Add(result.Country2, bars2)
	p.Legend.Top = true
	p.NominalX(names...)

	wt, err := p.WriterTo(9*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return errors.Wrap(err, "failed to render chart")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write chart")
	}
	return nil
}
