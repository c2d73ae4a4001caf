// Package metrics holds the service's Prometheus collectors and the
// OpenTelemetry instruments recorded by the visualizer.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/otlptranslator"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPRequestDuration observes handled requests by method and status code.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Namespace: "quadviz",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Latency of handled HTTP requests.",
	Buckets:   DefaultBuckets,
}, []string{"method", "code"})

// ObserveHTTP records one handled request.
func ObserveHTTP(method string, code int, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

// NewMeterProvider returns an OpenTelemetry meter provider whose readings are
// exposed through reg. Instrument names are escaped to underscores so they
// line up with the collectors registered through promauto.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(
		otelprom.WithRegisterer(reg),
		otelprom.WithTranslationStrategy(otlptranslator.UnderscoreEscapingWithSuffixes),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

func outcome(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String("outcome", OutcomeFailure)
	}

	return attribute.String("outcome", OutcomeSuccess)
}

// Instruments records what the visualizer does.
type Instruments struct {
	analyses metric.Int64Counter
	renders  metric.Float64Histogram
	exports  metric.Int64Counter
}

// NewInstruments creates the visualizer instruments on mp.
func NewInstruments(mp metric.MeterProvider) (*Instruments, error) {
	meter := mp.Meter("quadviz")

	analyses, err := meter.Int64Counter("quadviz.analyses",
		metric.WithDescription("Equations analysed, by root nature."))
	if err != nil {
		return nil, fmt.Errorf("could not create analyses counter: %w", err)
	}

	renders, err := meter.Float64Histogram("quadviz.graph.render.duration",
		metric.WithDescription("Time spent plotting graphs."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create render histogram: %w", err)
	}

	exports, err := meter.Int64Counter("quadviz.exports",
		metric.WithDescription("Artifacts exported, by format and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create exports counter: %w", err)
	}

	return &Instruments{analyses: analyses, renders: renders, exports: exports}, nil
}

// Analysis counts one analysed equation.
func (i *Instruments) Analysis(ctx context.Context, nature string) {
	i.analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("nature", nature)))
}

// Render records one render attempt.
func (i *Instruments) Render(ctx context.Context, elapsed time.Duration, err error) {
	i.renders.Record(ctx, elapsed.Seconds(), metric.WithAttributes(outcome(err)))
}

// Export counts one export attempt.
func (i *Instruments) Export(ctx context.Context, format string, err error) {
	i.exports.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format), outcome(err)))
}
