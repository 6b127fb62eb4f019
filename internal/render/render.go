// Package render draws candidates and estimated centers as a 2-D scatter
// plot: a static image through gonum/plot or an interactive HTML page
// through go-echarts. Only two chosen dimensions are drawn.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/TrevorS/clusterest"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options selects what is drawn.
type Options struct {
	Title string
	// XDim and YDim are the column indices plotted on each axis.
	XDim, YDim int
}

var (
	candidateColor = color.RGBA{R: 0x31, G: 0x68, B: 0x8e, A: 0xff}
	centerColor    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// DefaultOptions plots the first two dimensions, or the only one against
// itself for 1-D data.
func DefaultOptions(cols int) Options {
	return Options{Title: "Estimated cluster centers", XDim: 0, YDim: min(1, max(cols-1, 0))}
}

func (o Options) validate(candidates, centers clusterest.Matrix) error {
	if candidates.Rows() == 0 {
		return errors.New("render: no candidates to plot")
	}
	if centers.Rows() > 0 && centers.Cols() != candidates.Cols() {
		return fmt.Errorf("render: centers have %d dimensions, candidates %d", centers.Cols(), candidates.Cols())
	}
	for _, d := range []int{o.XDim, o.YDim} {
		if d < 0 || d >= candidates.Cols() {
			return fmt.Errorf("render: dimension %d out of range [0, %d)", d, candidates.Cols())
		}
	}
	return nil
}

func xys(m clusterest.Matrix, o Options) plotter.XYs {
	pts := make(plotter.XYs, m.Rows())
	for i := range pts {
		pts[i].X = float64(m.At(i, o.XDim))
		pts[i].Y = float64(m.At(i, o.YDim))
	}
	return pts
}

// SavePlot writes a scatter plot to path. The image format follows the file
// extension (png, svg, pdf, ...). Centers are drawn as crosses labelled with
// their selection order.
func SavePlot(path string, candidates, centers clusterest.Matrix, o Options) error {
	if err := o.validate(candidates, centers); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("dim %d", o.XDim)
	p.Y.Label.Text = fmt.Sprintf("dim %d", o.YDim)
	p.Add(plotter.NewGrid())

	cand, err := plotter.NewScatter(xys(candidates, o))
	if err != nil {
		return fmt.Errorf("render: candidates: %w", err)
	}
	cand.GlyphStyle.Color = candidateColor
	cand.GlyphStyle.Radius = vg.Points(2)
	cand.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(cand)
	p.Legend.Add("candidates", cand)

	if centers.Rows() > 0 {
		centerPts := xys(centers, o)
		cent, err := plotter.NewScatter(centerPts)
		if err != nil {
			return fmt.Errorf("render: centers: %w", err)
		}
		cent.GlyphStyle.Color = centerColor
		cent.GlyphStyle.Radius = vg.Points(5)
		cent.GlyphStyle.Shape = draw.CrossGlyph{}

		names := make([]string, centers.Rows())
		for i := range names {
			names[i] = strconv.Itoa(i + 1)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: centerPts, Labels: names})
		if err != nil {
			return fmt.Errorf("render: labels: %w", err)
		}
		labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(2)}

		p.Add(cent, labels)
		p.Legend.Add("centers", cent)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// WriteHTML renders an interactive scatter page to w.
func WriteHTML(w io.Writer, candidates, centers clusterest.Matrix, o Options) error {
	if err := o.validate(candidates, centers); err != nil {
		return err
	}

	cand := xys(candidates, o)
	xs := make([]float64, len(cand))
	ys := make([]float64, len(cand))
	data := make([]opts.ScatterData, len(cand))
	for i, pt := range cand {
		xs[i], ys[i] = pt.X, pt.Y
		data[i] = opts.ScatterData{Value: []interface{}{pt.X, pt.Y}}
	}

	cent := xys(centers, o)
	centerData := make([]opts.ScatterData, len(cent))
	for i, pt := range cent {
		centerData[i] = opts.ScatterData{Name: strconv.Itoa(i + 1), Value: []interface{}{pt.X, pt.Y}}
	}

	xMin, xMax := paddedRange(xs)
	yMin, yMax := paddedRange(ys)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("candidates=%d centers=%d", candidates.Rows(), centers.Rows()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: xMin, Max: xMax, Name: fmt.Sprintf("dim %d", o.XDim), NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: yMin, Max: yMax, Name: fmt.Sprintf("dim %d", o.YDim), NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("candidates", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	scatter.AddSeries("centers", centerData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}

// paddedRange returns the value range widened by 5% on each side, or by 1
// when all values are equal.
func paddedRange(v []float64) (lo, hi float64) {
	lo, hi = floats.Min(v), floats.Max(v)
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}
