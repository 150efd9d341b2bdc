package oteltrace

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/estore-labs/electrostore/internal/observability"
)

type tracer struct{ t trace.Tracer }

// New returns a span starter backed by the globally configured tracer
// provider. The host process is responsible for installing an SDK provider
// and exporter via otel.SetTracerProvider; without one, spans are no-ops.
func New(name string) observability.Tracer {
	if name == "" {
		name = "electrostore"
	}
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
