package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InitProvider installs a tracer provider as the global OpenTelemetry
// provider so spans carry real trace IDs. No exporter is configured; trace
// IDs exist for log correlation and the X-Trace-Id response header.
//
// The returned function shuts the provider down and should be deferred.
func InitProvider(serviceName, version string) func(context.Context) error {
	res := resource.NewWithAttributes(
		resource.Default().SchemaURL(),
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown
}
