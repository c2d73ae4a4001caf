package visualizer

import (
	"context"
	"fmt"
	"time"

	"quadviz/internal/config"
	"quadviz/pkg/export"
	"quadviz/pkg/graph"
	"quadviz/pkg/logger"
	"quadviz/pkg/metrics"
	"quadviz/pkg/quadratic"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Coefficients of y = ax² + bx + c as submitted by a client.
type Coefficients struct {
	A, B, C float64
}

// Visualization is everything the interactive page shows for one equation.
type Visualization struct {
	Analysis *quadratic.Analysis
	// Graph is the PNG rendering; empty when plotting failed.
	Graph []byte
	View  export.HTMLView
}

// GraphOptions derives renderer options from the application config.
func GraphOptions(cfg *config.Config) graph.Options {
	return graph.Options{
		Width:  cfg.Graph.Width,
		Height: cfg.Graph.Height,
		DPI:    cfg.Graph.DPI,
	}
}

// visualizer is the concrete implementation of the Visualizer interface.
type visualizer struct {
	renderer    *graph.Renderer
	exporters   export.Registry
	instruments *metrics.Instruments
}

func (v *visualizer) analyze(ctx context.Context, coeffs Coefficients) (*quadratic.Analysis, []byte, error) {
	res, err := quadratic.Analyze(coeffs.A, coeffs.B, coeffs.C)
	if err != nil {
		return nil, nil, fmt.Errorf("could not analyze equation: %w", err)
	}
	v.instruments.Analysis(ctx, string(res.Nature))

	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "equation analyzed",
			zap.String("equation", res.Equation()),
			zap.Float64("discriminant", res.Discriminant),
			zap.String("nature", string(res.Nature)))
	}

	return res, v.renderer.Render(ctx, res), nil
}

// Visualize analyses the equation and renders its graph. Only invalid
// coefficients produce an error; a failed render yields an empty graph.
func (v *visualizer) Visualize(ctx context.Context, coeffs Coefficients) (*Visualization, error) {
	res, img, err := v.analyze(ctx, coeffs)
	if err != nil {
		return nil, err
	}

	return &Visualization{
		Analysis: res,
		Graph:    img,
		View:     export.HTML(export.Input{Analysis: res, Graph: img}),
	}, nil
}

// Export recomputes the analysis and graph from scratch and runs the
// exporter for format.
func (v *visualizer) Export(ctx context.Context, coeffs Coefficients, format export.Format) (*export.Artifact, error) {
	res, img, err := v.analyze(ctx, coeffs)
	if err != nil {
		return nil, err
	}

	art, err := v.exporters.Export(ctx, format, export.Input{Analysis: res, Graph: img})
	v.instruments.Export(ctx, string(format), err)
	if err != nil {
		logger.Error(ctx, "export failed", zap.String("format", string(format)), zap.Error(err))

		return nil, err
	}

	logger.Info(ctx, "artifact exported",
		zap.String("format", string(format)),
		zap.String("filename", art.Filename),
		zap.Int("size", len(art.Body)))

	return art, nil
}

// New creates a Visualizer rendering graphs with opts and recording its
// instruments on mp.
func New(opts graph.Options, exporters export.Registry, mp metric.MeterProvider) (Visualizer, error) {
	instruments, err := metrics.NewInstruments(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create instruments: %w", err)
	}

	return &visualizer{
		renderer: graph.NewRenderer(opts, func(ctx context.Context, elapsed time.Duration, err error) {
			instruments.Render(ctx, elapsed, err)
		}),
		exporters:   exporters,
		instruments: instruments,
	}, nil
}
