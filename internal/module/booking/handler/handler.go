package handler

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"vehicle-booking-service/internal/module/booking/models/request"
	"vehicle-booking-service/internal/module/booking/models/response"
	"vehicle-booking-service/internal/module/booking/usecases"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/helpers"
	"vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/metadata"
	"vehicle-booking-service/internal/pkg/metrics"
	"vehicle-booking-service/internal/pkg/middleware"
	"vehicle-booking-service/internal/pkg/validator"

	playground "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *playground.Validate
	Usecase   usecases.Usecase
	Metrics   *metrics.Metrics
}

type flow func(ctx context.Context, payload *request.VehicleBooking, md metadata.ServiceMetadata) (response.VehicleBooking, error)

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	return h.handle(ctx, metrics.OperationCreateBooking, "vehicle booking created", h.Usecase.CreateBooking)
}

func (h *BookingHandler) CompleteBooking(ctx *fiber.Ctx) error {
	return h.handle(ctx, metrics.OperationCompleteBooking, "vehicle booking completed", h.Usecase.CompleteBooking)
}

func (h *BookingHandler) handle(ctx *fiber.Ctx, operation, successMsg string, run flow) error {
	md, ok := middleware.Metadata(ctx)
	if !ok {
		return h.fail(ctx, operation, errors.InternalServerError("request metadata missing"))
	}

	req, err := h.parse(ctx.Body())
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	resp, err := run(ctx.UserContext(), req, md)
	if err != nil {
		return h.fail(ctx, operation, err)
	}

	h.Metrics.Success(operation)
	h.Log.Info(ctx.UserContext(), successMsg, "bookingId", resp.BookingID)
	return helpers.RespSuccess(ctx, h.Log, resp, successMsg)
}

// parse decodes and schema-checks the body. A missing, malformed or
// non-object body is a 400, an object of the wrong shape a 422.
func (h *BookingHandler) parse(body []byte) (*request.VehicleBooking, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.BadRequest("no payload body")
	}
	if body[0] != '{' {
		return nil, errors.BadRequest("payload must be a json object")
	}

	var req request.VehicleBooking
	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "payload"
			}
			return nil, errors.UnprocessableEntity("invalid payload", []validator.FieldError{{
				Field:   field,
				Rule:    "type",
				Message: fmt.Sprintf("%s must not be a %s", field, typeErr.Value),
			}})
		}
		return nil, errors.BadRequest("error parse request")
	}

	if err := validator.Validate(h.Validator, req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *BookingHandler) fail(ctx *fiber.Ctx, operation string, err error) error {
	h.Log.Error(ctx.UserContext(), fmt.Sprintf("error %s: %v", operation, err), "kind", errors.KindOf(err))
	h.Metrics.Failure(operation, err)
	return helpers.RespError(ctx, h.Log, err)
}
