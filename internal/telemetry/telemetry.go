// Package telemetry exports game traces over OTLP when an endpoint is set.
package telemetry

import (
	"context"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceVersion  = "0.1.0"
	shutdownTimeout = 5 * time.Second
)

// Enabled reports whether an OTLP endpoint has been configured.
func Enabled() bool {
	_, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT")
	return ok
}

// Resource describes the running binary. attrs carry the game setup, for
// example the configured presets.
func Resource(ctx context.Context, serviceName string, attrs ...attribute.KeyValue) (*resource.Resource, error) {
	attrs = append([]attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
	}, attrs...)
	return resource.New(ctx,
		resource.WithAttributes(attrs...),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeVersion(),
	)
}

// Setup registers a global tracer provider exporting to the endpoint named by
// the OTEL_* environment. The returned function flushes pending spans and
// must be called before the process exits.
func Setup(ctx context.Context, serviceName string, attrs ...attribute.KeyValue) (flush func() error, err error) {
	res, err := Resource(ctx, serviceName, attrs...)
	if err != nil {
		return nil, err
	}
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return tp.Shutdown(ctx)
	}, nil
}

// Tracer returns a named tracer from the global provider. Until Setup is
// called the global provider hands out no-op tracers.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("minesweeper/" + name)
}

func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("minesweeper/noop")
}
