package solve

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const chartSamples = 101

// Chart builds an interactive line chart of y = p(x) over the same range as
// [Plot], with the real zeros of linear and quadratic polynomials as a
// separate scatter series.
//
// It returns a [ValidationError] if p is empty.
func Chart(p Poly) (*charts.Line, error) {
	title, err := FormatPolynomial(p)
	if err != nil {
		return nil, err
	}
	lo, hi := graphRange(p)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "y = " + title,
			Subtitle: "Real roots marked on the x axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			Min:  lo,
			Max:  hi,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Name:  "y",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	xys := sample(p, lo, hi, chartSamples)
	data := make([]opts.LineData, len(xys))
	for i, xy := range xys {
		data[i] = opts.LineData{Value: []float64{xy.X, xy.Y}}
	}
	line.AddSeries("y", data, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))

	if zeros := realZeros(p); len(zeros) > 0 {
		scatter := charts.NewScatter()
		points := make([]opts.ScatterData, len(zeros))
		for i, x := range zeros {
			points[i] = opts.ScatterData{
				Name:       Real(x).String(),
				Value:      []float64{x, 0},
				SymbolSize: 10,
			}
		}
		scatter.AddSeries("real roots", points)
		line.Overlap(scatter)
	}
	return line, nil
}

// WriteChart renders [Chart] of p as an HTML page to w.
func WriteChart(w io.Writer, p Poly) error {
	line, err := Chart(p)
	if err != nil {
		return err
	}
	page := components.NewPage().SetPageTitle("solve")
	page.AddCharts(line)
	return page.Render(w)
}
