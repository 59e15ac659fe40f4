package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const (
	// Instrumentation scope shared by the tracer and the meter.
	scopeName = "github.com/n3il-kb/portfolio"

	resourceAttrMode = "app.mode"
)

// Providers holds the initialized observability providers.
type Providers struct {
	Tracer  trace.Tracer
	Meter   metric.Meter
	Logger  *slog.Logger
	Metrics *SiteMetrics

	// Shutdown flushes pending telemetry. Call it before exit.
	Shutdown func(ctx context.Context) error
}

// flushers are exporter shutdown hooks, run together on exit.
type flushers []func(context.Context) error

func (f flushers) run(ctx context.Context) error {
	errs := make([]error, 0, len(f))
	for _, fn := range f {
		errs = append(errs, fn(ctx))
	}

	return errors.Join(errs...)
}

// Init sets up the global tracer and meter providers and the logger. Without
// an OTLP endpoint the build stays offline and every provider is a no-op.
func Init(cfg Config) (Providers, error) {
	var tp trace.TracerProvider = nooptrace.NewTracerProvider()

	var mp metric.MeterProvider = noopmetric.NewMeterProvider()

	var flush flushers

	if cfg.OTLPEndpoint != "" {
		ctx := context.Background()

		res, err := resource.New(ctx, resource.WithAttributes(resourceAttrs(cfg)...))
		if err != nil {
			return Providers{}, fmt.Errorf("build otel resource: %w", err)
		}

		sdkTP, err := exportTraces(ctx, cfg, res)
		if err != nil {
			return Providers{}, err
		}

		flush = append(flush, sdkTP.Shutdown)

		sdkMP, err := exportMetrics(ctx, cfg, res)
		if err != nil {
			return Providers{}, errors.Join(err, flush.run(ctx))
		}

		flush = append(flush, sdkMP.Shutdown)
		tp, mp = sdkTP, sdkMP
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	meter := mp.Meter(scopeName)

	siteMetrics, err := NewSiteMetrics(meter)
	if err != nil {
		return Providers{}, errors.Join(err, flush.run(context.Background()))
	}

	grace := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if grace <= 0 {
		grace = defaultShutdownTimeoutSec * time.Second
	}

	return Providers{
		Tracer:  tp.Tracer(scopeName),
		Meter:   meter,
		Logger:  NewLogger(cfg),
		Metrics: siteMetrics,
		Shutdown: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, grace)
			defer cancel()

			return flush.run(ctx)
		},
	}, nil
}

func resourceAttrs(cfg Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}

	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.ServiceVersion))
	}

	if cfg.Mode != "" {
		attrs = append(attrs, attribute.String(resourceAttrMode, string(cfg.Mode)))
	}

	return attrs
}

func exportTraces(ctx context.Context, cfg Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		exporterOpts = append(exporterOpts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

func exportMetrics(ctx context.Context, cfg Config, res *resource.Resource) (*sdkmetric.MeterProvider, error) {
	exporterOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint)}
	if cfg.OTLPInsecure {
		exporterOpts = append(exporterOpts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	), nil
}

// NewLogger returns a text or JSON logger whose records carry the service,
// the mode and the active span.
func NewLogger(cfg Config) *slog.Logger {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}

	level := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler = slog.NewTextHandler(out, level)
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(out, level)
	}

	return slog.New(NewTracingHandler(inner, cfg.ServiceName, cfg.Mode))
}
