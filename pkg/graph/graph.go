// Package graph plots a quadratic function to a PNG image.
//
// The viewport is fixed: 400 samples over vertex_x ± 10, regardless of how
// steep or flat the parabola is. The image size depends only on Options.
package graph

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"time"

	"quadviz/pkg/logger"
	"quadviz/pkg/quadratic"
	"quadviz/pkg/serrors"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	// Samples is the number of points the curve is evaluated at.
	Samples = 400
	// HalfWidth is the distance from the vertex to each edge of the viewport.
	HalfWidth = 10.0

	title = "Graph of Quadratic Function"
)

//nolint: gochecknoglobals
var (
	curveColor     = color.RGBA{R: 0x00, G: 0x00, B: 0x80, A: 0xff} // navy
	axisColor      = color.Black
	gridColor      = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x99}
	vertexColor    = color.RGBA{R: 0xff, A: 0xff}
	rootColor      = color.RGBA{G: 0x80, A: 0xff}
	interceptColor = color.RGBA{R: 0x80, B: 0x80, A: 0xff}
)

// Options control the raster size of rendered graphs.
type Options struct {
	// Width and Height of the image in inches.
	Width, Height float64
	// DPI is the raster resolution.
	DPI int
}

// DefaultOptions produce a 980x560 image.
func DefaultOptions() Options {
	return Options{Width: 7, Height: 4, DPI: 140}
}

// Pixels returns the width and height of images rendered with o.
func (o Options) Pixels() (int, int) {
	return int(o.Width * float64(o.DPI)), int(o.Height * float64(o.DPI))
}

// Observer is notified after every render attempt.
type Observer func(ctx context.Context, elapsed time.Duration, err error)

// Renderer renders analyses to PNG images. A Renderer holds no per-request
// state and is safe for concurrent use.
type Renderer struct {
	options  Options
	observer Observer
}

// NewRenderer returns a Renderer producing images sized by opts. observer
// may be nil.
func NewRenderer(opts Options, observer Observer) *Renderer {
	return &Renderer{options: opts, observer: observer}
}

// Render plots the analysed equation. Rendering is best-effort: any failure
// is logged and yields an empty image instead of an error.
func (r *Renderer) Render(ctx context.Context, res *quadratic.Analysis) []byte {
	start := time.Now()
	img, err := r.Plot(res.A, res.B, res.C, res.Vertex, res.RealRoots())
	if r.observer != nil {
		r.observer(ctx, time.Since(start), err)
	}
	if err != nil {
		logger.Error(ctx, "graph error", zap.Error(err), zap.String("equation", res.Equation()))

		return nil
	}

	return img
}

// Plot draws y = ax² + bx + c around vertex, marking roots (if any), the
// vertex and the y-intercept, and returns the PNG encoding. Errors, including
// panics raised by the plotting library, are reported as
// serrors.ErrRenderFailure.
func (r *Renderer) Plot(a, b, c float64, vertex quadratic.Point, roots []float64) (img []byte, err error) {
	defer func() {
		if p := recover(); p != nil {
			img, err = nil, serrors.With(serrors.ErrRenderFailure, "plotting panicked: %v", p)
		}
	}()

	p, err := r.build(a, b, c, vertex, roots)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrRenderFailure, err, "could not build plot")
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(r.options.Width)*vg.Inch, vg.Length(r.options.Height)*vg.Inch),
		vgimg.UseDPI(r.options.DPI),
	)
	p.Draw(draw.New(canvas))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(&buf); err != nil {
		return nil, serrors.Wrap(serrors.ErrRenderFailure, err, "could not encode png")
	}

	return buf.Bytes(), nil
}

func (r *Renderer) build(a, b, c float64, vertex quadratic.Point, roots []float64) (*plot.Plot, error) {
	f := func(x float64) float64 { return a*x*x + b*x + c }

	lo, hi := vertex.X-HalfWidth, vertex.X+HalfWidth
	curve := make(plotter.XYs, Samples)
	for i := range curve {
		x := lo + (hi-lo)*float64(i)/float64(Samples-1)
		curve[i] = plotter.XY{X: x, Y: f(x)}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(3), vg.Points(3)}
	grid.Vertical.Color, grid.Vertical.Dashes, grid.Vertical.Width = gridColor, dashes, vg.Points(0.5)
	grid.Horizontal.Color, grid.Horizontal.Dashes, grid.Horizontal.Width = gridColor, dashes, vg.Points(0.5)
	p.Add(grid)

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("could not sample curve: %w", err)
	}
	line.Color = curveColor
	line.Width = vg.Points(1.5)

	// axes through the origin
	ymin, ymax := curve[0].Y, curve[0].Y
	for _, pt := range curve {
		ymin, ymax = min(ymin, pt.Y), max(ymax, pt.Y)
	}
	xAxis, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("could not draw x axis: %w", err)
	}
	xAxis.Color, xAxis.Width = axisColor, vg.Points(0.8)
	p.Add(xAxis)
	if lo <= 0 && 0 <= hi {
		yAxis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: min(ymin, 0)}, {X: 0, Y: max(ymax, 0)}})
		if err != nil {
			return nil, fmt.Errorf("could not draw y axis: %w", err)
		}
		yAxis.Color, yAxis.Width = axisColor, vg.Points(0.8)
		p.Add(yAxis)
	}

	p.Add(line)
	p.Legend.Add(fmt.Sprintf("y = %sx² + %sx + %s",
		quadratic.Natural(a), quadratic.Natural(b), quadratic.Natural(c)), line)

	if err := addMarkers(p, "Vertex", vertexColor, plotter.XYs{{X: vertex.X, Y: vertex.Y}}); err != nil {
		return nil, err
	}
	if len(roots) > 0 {
		pts := make(plotter.XYs, len(roots))
		for i, x := range roots {
			pts[i] = plotter.XY{X: x, Y: 0}
		}
		if err := addMarkers(p, "Roots", rootColor, pts); err != nil {
			return nil, err
		}
	}
	if err := addMarkers(p, "Y-intercept", interceptColor, plotter.XYs{{X: 0, Y: c}}); err != nil {
		return nil, err
	}

	return p, nil
}

func addMarkers(p *plot.Plot, label string, c color.Color, pts plotter.XYs) error {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("could not mark %s: %w", label, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(4)

	p.Add(s)
	p.Legend.Add(label, s)

	return nil
}
