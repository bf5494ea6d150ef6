package middleware

import (
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/metadata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	CausationIDHeader = "X-Causation-ID"
	MetadataKey       = "service_metadata"
)

const tracerName = "vehicle-booking-service/http"

type Middleware struct {
	Log     log.Logger
	Service config.ServiceConfig
	Tracer  trace.TracerProvider
}

// RequestContext opens the request span and derives the request metadata:
// the request id is the correlation id, X-Causation-ID the causation id when
// sent. The metadata is stored in the locals and in the user context.
//
// Values read from the request are copied: fasthttp reuses its buffers once
// the handler returns, while spans are exported later.
func (m *Middleware) RequestContext(ctx *fiber.Ctx) error {
	method, path := utils.CopyString(ctx.Method()), utils.CopyString(ctx.Path())

	parent := otel.GetTextMapPropagator().Extract(ctx.UserContext(), propagation.HeaderCarrier(ctx.GetReqHeaders()))
	spanCtx, span := m.Tracer.Tracer(tracerName).Start(parent, method+" "+path,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.target", path),
		),
	)
	defer span.End()

	md := metadata.New(requestID(ctx), utils.CopyString(ctx.Get(CausationIDHeader)), m.Service.Name, m.Service.Domain)
	ctx.Locals(MetadataKey, md)
	ctx.SetUserContext(metadata.NewContext(spanCtx, md))

	m.Log.Debug(ctx.UserContext(), "request received", "method", method, "path", path)

	err := ctx.Next()

	status := ctx.Response().StatusCode()
	span.SetAttributes(attribute.Int("http.status_code", status))
	if status >= fiber.StatusInternalServerError {
		span.SetStatus(codes.Error, fiber.ErrInternalServerError.Message)
	}
	return err
}

// Metadata returns what RequestContext stored for the request.
func Metadata(ctx *fiber.Ctx) (metadata.ServiceMetadata, bool) {
	md, ok := ctx.Locals(MetadataKey).(metadata.ServiceMetadata)
	return md, ok
}

func requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string); ok && id != "" {
		return utils.CopyString(id)
	}
	return utils.CopyString(ctx.Get(fiber.HeaderXRequestID))
}
