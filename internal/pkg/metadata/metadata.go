// Package metadata holds the correlation data that travels with a request
// from the HTTP boundary to the published domain event.
package metadata

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type ServiceMetadata struct {
	CorrelationID string `json:"correlationId"`
	CausationID   string `json:"causationId"`
	Service       string `json:"service"`
	Domain        string `json:"domain"`
}

// New builds the metadata for one inbound request. causationID falls back to
// the request id when the caller did not supply one.
func New(requestID, causationID, service, domain string) ServiceMetadata {
	if causationID == "" {
		causationID = requestID
	}
	return ServiceMetadata{
		CorrelationID: requestID,
		CausationID:   causationID,
		Service:       service,
		Domain:        domain,
	}
}

// Attributes are the span attributes every span of the request carries.
func (m ServiceMetadata) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("correlationId", m.CorrelationID),
		attribute.String("causationId", m.CausationID),
		attribute.String("service", m.Service),
	}
}

// KeysAndValues are the structured log fields every log line of the request carries.
func (m ServiceMetadata) KeysAndValues() []interface{} {
	return []interface{}{
		"correlationId", m.CorrelationID,
		"causationId", m.CausationID,
		"serviceName", m.Service,
	}
}

type contextKey struct{}

// NewContext stores m in ctx and annotates the span already active in ctx, if any.
func NewContext(ctx context.Context, m ServiceMetadata) context.Context {
	trace.SpanFromContext(ctx).SetAttributes(m.Attributes()...)
	return context.WithValue(ctx, contextKey{}, m)
}

func FromContext(ctx context.Context) (ServiceMetadata, bool) {
	if ctx == nil {
		return ServiceMetadata{}, false
	}
	m, ok := ctx.Value(contextKey{}).(ServiceMetadata)
	return m, ok
}
