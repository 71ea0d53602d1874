// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Setup installs a global tracer provider and the B3 propagator.
// Spans are exported to Zipkin only when zipkinEndpoint is set.
// The returned function flushes and stops the provider.
func Setup(serviceName string, zipkinEndpoint string) (func(context.Context) error, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", serviceName),
		)),
	}

	if zipkinEndpoint != "" {
		exporter, err := zipkin.New(zipkinEndpoint)
		if err != nil {
			return nil, fmt.Errorf("create zipkin exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader|b3.B3SingleHeader)),
		propagation.TraceContext{},
	))

	return provider.Shutdown, nil
}

// ContextFromB3 returns ctx carrying the remote span described by a single b3 header value.
func ContextFromB3(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	carrier := propagation.MapCarrier{"b3": header}
	return b3.New().Extract(ctx, carrier)
}

// InjectB3 writes the span of ctx as a single b3 header value, empty when ctx has no span.
func InjectB3(ctx context.Context) string {
	if !oteltrace.SpanContextFromContext(ctx).IsValid() {
		return ""
	}
	carrier := propagation.MapCarrier{}
	b3.New(b3.WithInjectEncoding(b3.B3SingleHeader)).Inject(ctx, carrier)
	return carrier.Get("b3")
}
