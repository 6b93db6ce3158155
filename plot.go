package solve

import (
	"image/color"
	"io"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const plotSamples = 200

// realZeros returns the real zeros of linear and quadratic polynomials in
// increasing order. Other degrees have no zeros reported.
func realZeros(p Poly) []float64 {
	var roots [2]float64
	var n int
	switch len(p) {
	case 2:
		roots, n = realQuadraticZeros(p[0], p[1], 0)
	case 3:
		roots, n = realQuadraticZeros(p[0], p[1], p[2])
	}
	return append([]float64(nil), roots[:n]...)
}

// graphRange picks an x range that shows all real zeros of p, as well as the
// vertex of a parabola.
func graphRange(p Poly) (lo, hi float64) {
	xs := realZeros(p)
	if len(p) == 3 && p[2] != 0 {
		xs = append(xs, neg(p[1])/(2*p[2]))
	}
	if len(xs) == 0 {
		xs = []float64{0}
	}
	lo, hi = slices.Min(xs), slices.Max(xs)
	margin := (hi - lo) / 2
	if margin < 1 {
		margin = 1
	}
	return lo - margin, hi + margin
}

// sample evaluates p at n evenly spaced points in [lo, hi].
func sample(p Poly, lo, hi float64, n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		xys[i].X = x
		xys[i].Y = p.Eval(x)
	}
	return xys
}

// Plot graphs y = p(x) over a range that includes the real zeros of p. For
// linear and quadratic polynomials, the real zeros are marked.
//
// It returns a [ValidationError] if p is empty.
func Plot(p Poly) (*plot.Plot, error) {
	title, err := FormatPolynomial(p)
	if err != nil {
		return nil, err
	}
	lo, hi := graphRange(p)

	pl := plot.New()
	pl.Title.Text = "y = " + title
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	fn := plotter.NewFunction(p.Eval)
	fn.XMin, fn.XMax = lo, hi
	fn.Samples = plotSamples
	fn.Color = color.RGBA{B: 200, A: 255}
	fn.Width = vg.Points(1.5)

	axis, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.Color = color.Gray{Y: 96}
	axis.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}

	pl.Add(plotter.NewGrid(), axis, fn)

	if zeros := realZeros(p); len(zeros) > 0 {
		pts := make(plotter.XYs, len(zeros))
		for i, x := range zeros {
			pts[i].X = x
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		pl.Add(sc)
		pl.Legend.Add("real roots", sc)
	}

	ys := sample(p, lo, hi, plotSamples)
	_, _, ymin, ymax := plotter.XYRange(ys)
	ymin, ymax = min(ymin, 0), max(ymax, 0)
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	pl.X.Min, pl.X.Max = lo, hi
	pl.Y.Min, pl.Y.Max = ymin, ymax
	return pl, nil
}

// WritePlot renders [Plot] of p to w in the given format, which is any format
// supported by gonum.org/v1/plot, such as "svg", "png" or "pdf".
func WritePlot(w io.Writer, p Poly, format string) error {
	pl, err := Plot(p)
	if err != nil {
		return err
	}
	wt, err := pl.WriterTo(4*vg.Inch, 3*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
