// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware for the quadratic visualizer.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"quadviz/internal/api/handler/v1handler"
	"quadviz/internal/api/handler/webhandler"
	"quadviz/internal/api/specs/v1specs"
	"quadviz/internal/config"
	"quadviz/internal/visualizer"
	"quadviz/pkg/controller"
	"quadviz/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target specs/v1specs --package v1specs --config specs/ogen.yml --clean specs/v1.yaml

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Flash configures the signed flash message cookie.
	Flash controller.FlasherOptions

	// Addr is the TCP address the server listens on, e.g. ":5000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// PprofEnabled mounts net/http/pprof under /debug/pprof/.
	PprofEnabled bool
	// AllowedOrigin is sent as Access-Control-Allow-Origin.
	AllowedOrigin string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Flash: controller.FlasherOptions{
			SecretKey:  cfg.Session.SecretKey,
			CookieName: cfg.Session.FlashCookie,
			TTL:        cfg.Session.FlashTTL,
		},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		PprofEnabled:      cfg.HTTP.PprofEnabled,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
	}
}

type Deps struct {
	Visualizer visualizer.Visualizer
	// Gatherer backs the metrics endpoint; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
	// MeterProvider receives the v1 API request metrics; the global provider when nil.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - the interactive page and artifact downloads
// - the v1 JSON API served by the generated server, its embedded OpenAPI spec and Swagger UI
// - Prometheus metrics endpoint (MetricsPath)
// - pprof endpoints for profiling, when enabled
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	if deps.Visualizer == nil {
		return nil, fmt.Errorf("visualizer is required")
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	flasher, err := controller.NewFlasher(opts.Flash)
	if err != nil {
		return nil, fmt.Errorf("could not create flasher: %w", err)
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// page and downloads
	webhandler.New(webhandler.Deps{Visualizer: deps.Visualizer, Flasher: flasher}).Register(mux)

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Quadratic Visualizer",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1 := v1handler.New(v1handler.Deps{Visualizer: deps.Visualizer})
	v1Srv, err := v1specs.NewServer(v1,
		v1specs.WithErrorHandler(v1.HandleError),
		v1specs.WithMeterProvider(deps.MeterProvider),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}
	mux.Handle("/v1/", http.MaxBytesHandler(v1Srv, v1handler.MaxBodyBytes))

	// pprof
	if opts.PprofEnabled {
		mux.Handle("/debug/pprof/", controller.PprofMux())
	}

	// cors
	handler := controller.WithCORS(opts.AllowedOrigin)(mux)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, "request timed out")
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.Std(ctx, slog.LevelError),
	}, nil
}
