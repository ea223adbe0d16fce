// Package telemetry wires error reporting (Sentry) and tracing
// (OpenTelemetry over OTLP/HTTP). Both stay disabled unless configured,
// in which case the global Sentry hub and tracer provider are no-ops.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/use-agent/vitals/config"
)

const sentryFlushTimeout = 2 * time.Second

// ShutdownFunc flushes and stops whatever Setup started.
type ShutdownFunc func(ctx context.Context) error

// Setup initialises the configured backends. The returned ShutdownFunc is
// never nil.
func Setup(ctx context.Context, cfg config.TelemetryConfig, release string) (ShutdownFunc, error) {
	var shutdowns []ShutdownFunc
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:        cfg.SentryDSN,
			Release:    release,
			ServerName: cfg.ServiceName,
		})
		if err != nil {
			return shutdown, fmt.Errorf("telemetry: init sentry: %w", err)
		}
		shutdowns = append(shutdowns, func(context.Context) error {
			sentry.Flush(sentryFlushTimeout)
			return nil
		})
		slog.Info("sentry error reporting enabled")
	}

	if cfg.OTLPEndpoint != "" {
		exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
		if err != nil {
			return shutdown, fmt.Errorf("telemetry: create otlp exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(resource.NewSchemaless(
				attribute.String("service.name", cfg.ServiceName),
				attribute.String("service.version", release),
			)),
		)
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.TraceContext{})
		shutdowns = append(shutdowns, tp.Shutdown)
		slog.Info("otlp tracing enabled", "endpoint", cfg.OTLPEndpoint)
	}

	return shutdown, nil
}

// HTTPClient returns an outbound client whose requests are traced.
// No timeout is set; transport defaults apply.
func HTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}
