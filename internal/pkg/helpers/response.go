package helpers

import (
	stderrors "errors"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type ErrorResponse struct {
	Error     errors.Kind `json:"error"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

// RespSuccess writes data as the 200 response body.
func RespSuccess(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	logger.Debug(ctx.UserContext(), message, "path", ctx.Path())
	return ctx.Status(fiber.StatusOK).JSON(data)
}

// RespError maps err to its status code and a JSON error body. Messages of
// 5xx errors are not echoed to the caller.
func RespError(ctx *fiber.Ctx, logger log.Logger, err error) error {
	code := errors.CodeOf(err)
	body := ErrorResponse{
		Error:     errors.KindOf(err),
		Message:   "internal server error",
		RequestID: requestID(ctx),
	}

	var ce *errors.CustomError
	if code < fiber.StatusInternalServerError && stderrors.As(err, &ce) {
		body.Message = ce.Message
		body.Details = ce.Details
	}

	logger.Debug(ctx.UserContext(), "responding with error", "status", code, "kind", body.Error)
	return ctx.Status(code).JSON(body)
}

func requestID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ctx.Get(fiber.HeaderXRequestID)
}
