package routing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for the route registry.
const defaultTracerName = "vango/routing"

// Span and attribute names.
const (
	spanGetOrCreateContent = "routing.GetOrCreateContent"
	attrRoute              = "routing.route"
	attrSource             = "routing.source"
)

func defaultTracer() trace.Tracer {
	return otel.Tracer(defaultTracerName)
}

// startResolve starts the span covering one GetOrCreateContent call.
func (r *Registry) startResolve(ctx context.Context, route string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, spanGetOrCreateContent,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String(attrRoute, route)),
	)
}

// endResolve records the outcome on span and ends it.
func endResolve(span trace.Span, source string, err error) {
	span.SetAttributes(attribute.String(attrSource, source))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
